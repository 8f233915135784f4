package lifecycle

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/civic_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC)

func newTestMachine() *Machine {
	return NewMachine(func() time.Time { return fixedNow })
}

func reportedRecord() models.ProblemRecord {
	reportedAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	return models.ProblemRecord{
		ID:         uuid.New(),
		Title:      "Pothole",
		Category:   "Infrastructure",
		Severity:   3,
		Priority:   models.PriorityMedium,
		Status:     models.StatusReported,
		ReportedAt: reportedAt,
		Timeline: []models.TimelineEntry{
			{Status: models.StatusReported, Timestamp: reportedAt, Description: "Problem reported by citizen"},
		},
	}
}

// advance проводит запись по цепочке статусов
func advance(t *testing.T, m *Machine, r models.ProblemRecord, targets ...models.Status) models.ProblemRecord {
	t.Helper()
	for _, target := range targets {
		req := Request{Target: target}
		if target == models.StatusAssigned {
			req.Department = "Roads Dept"
		}
		next, err := m.Transition(r, req)
		require.NoError(t, err, "transition to %s", target)
		r = next
	}
	return r
}

func TestTransition_AppendsOneEntry(t *testing.T) {
	m := newTestMachine()
	r := reportedRecord()

	next, err := m.Transition(r, Request{Target: models.StatusAIProcessed, Actor: "triage", Evidence: []string{"https://p/1"}})

	require.NoError(t, err)
	assert.Equal(t, models.StatusAIProcessed, next.Status)
	require.Len(t, next.Timeline, 2)
	last := next.Timeline[1]
	assert.Equal(t, models.StatusAIProcessed, last.Status)
	assert.Equal(t, fixedNow, last.Timestamp)
	assert.Equal(t, "triage", last.Actor)
	assert.Equal(t, []string{"https://p/1"}, last.Evidence)
	assert.NoError(t, next.CheckInvariants())

	// исходная запись не изменилась
	assert.Equal(t, models.StatusReported, r.Status)
	assert.Len(t, r.Timeline, 1)
}

func TestTransition_SkippingStagesIsIllegal(t *testing.T) {
	m := newTestMachine()
	r := reportedRecord()

	_, err := m.Transition(r, Request{Target: models.StatusInProgress})
	assert.ErrorIs(t, err, models.ErrIllegalTransition)

	var terr *models.TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, models.StatusReported, terr.From)
	assert.Equal(t, models.StatusInProgress, terr.To)

	_, err = m.Transition(r, Request{Target: models.StatusResolved})
	assert.ErrorIs(t, err, models.ErrIllegalTransition)
}

func TestTransition_InProgressFromAssigned(t *testing.T) {
	m := newTestMachine()
	r := advance(t, m, reportedRecord(), models.StatusAIProcessed, models.StatusAssigned)

	next, err := m.Transition(r, Request{Target: models.StatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, next.Status)
	assert.Equal(t, "Roads Dept", next.AssignedDepartment)
}

func TestTransition_FastTrackResolution(t *testing.T) {
	m := newTestMachine()
	inProgress := advance(t, m, reportedRecord(), models.StatusAIProcessed, models.StatusAssigned, models.StatusInProgress)

	resolved, err := m.Transition(inProgress, Request{Target: models.StatusResolved})
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, resolved.Status)

	verification := advance(t, m, inProgress, models.StatusVerification)
	resolved, err = m.Transition(verification, Request{Target: models.StatusResolved})
	require.NoError(t, err)
	assert.Len(t, resolved.Timeline, 6)
}

func TestTransition_AssignedCannotJumpToResolved(t *testing.T) {
	m := newTestMachine()
	r := advance(t, m, reportedRecord(), models.StatusAIProcessed, models.StatusAssigned)
	require.Len(t, r.Timeline, 3)

	_, err := m.Transition(r, Request{Target: models.StatusResolved})
	assert.ErrorIs(t, err, models.ErrIllegalTransition)
}

func TestTransition_ResolvedIsTerminal(t *testing.T) {
	m := newTestMachine()
	r := advance(t, m, reportedRecord(),
		models.StatusAIProcessed, models.StatusAssigned, models.StatusInProgress, models.StatusResolved)

	for _, target := range models.Statuses {
		_, err := m.Transition(r, Request{Target: target, Department: "Roads Dept"})
		assert.ErrorIs(t, err, models.ErrIllegalTransition, "target %s", target)
	}
}

func TestTransition_AssignedRequiresDepartment(t *testing.T) {
	m := newTestMachine()
	r := advance(t, m, reportedRecord(), models.StatusAIProcessed)

	_, err := m.Transition(r, Request{Target: models.StatusAssigned})
	assert.ErrorIs(t, err, models.ErrMissingAssignment)

	next, err := m.Transition(r, Request{Target: models.StatusAssigned, Department: "  Roads Dept "})
	require.NoError(t, err)
	assert.Equal(t, "Roads Dept", next.AssignedDepartment)
	assert.Equal(t, "Assigned to Roads Dept", next.Timeline[2].Description)
}

func TestTransition_Reassignment(t *testing.T) {
	m := newTestMachine()
	r := advance(t, m, reportedRecord(), models.StatusAIProcessed, models.StatusAssigned)

	next, err := m.Transition(r, Request{Target: models.StatusAssigned, Department: "Electrical Division"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, next.Status)
	assert.Equal(t, "Electrical Division", next.AssignedDepartment)
	assert.Equal(t, "Reassigned to Electrical Division", next.Timeline[len(next.Timeline)-1].Description)

	_, err = m.Transition(r, Request{Target: models.StatusAssigned})
	assert.ErrorIs(t, err, models.ErrMissingAssignment)
}

func TestTransition_ReassignmentToSameDepartmentIsRejected(t *testing.T) {
	m := newTestMachine()
	r := advance(t, m, reportedRecord(), models.StatusAIProcessed, models.StatusAssigned)

	_, err := m.Transition(r, Request{Target: models.StatusAssigned, Department: " roads dept "})

	assert.ErrorIs(t, err, models.ErrInvalidMutation)
	assert.Len(t, r.Timeline, 3)
}

func TestTransition_DepartmentChangeAfterAssignedIsRejected(t *testing.T) {
	m := newTestMachine()
	r := advance(t, m, reportedRecord(), models.StatusAIProcessed, models.StatusAssigned)

	_, err := m.Transition(r, Request{Target: models.StatusInProgress, Department: "Water Department"})
	assert.ErrorIs(t, err, models.ErrInvalidMutation)

	next, err := m.Transition(r, Request{Target: models.StatusInProgress, Department: "Roads Dept"})
	require.NoError(t, err)
	assert.Equal(t, "Roads Dept", next.AssignedDepartment)
}

func TestTransition_UnknownTarget(t *testing.T) {
	m := newTestMachine()
	_, err := m.Transition(reportedRecord(), Request{Target: "closed"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestTransition_Defaults(t *testing.T) {
	m := newTestMachine()
	next, err := m.Transition(reportedRecord(), Request{Target: models.StatusAIProcessed, Description: "  "})
	require.NoError(t, err)
	last := next.Timeline[len(next.Timeline)-1]
	assert.Equal(t, SystemActor, last.Actor)
	assert.Equal(t, "Automatically processed", last.Description)
}

func TestRetriage(t *testing.T) {
	m := newTestMachine()
	r := reportedRecord()

	next, err := m.Retriage(r, models.PriorityUrgent)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityUrgent, next.Priority)
	assert.Len(t, next.Timeline, 1)
	assert.Equal(t, models.PriorityMedium, r.Priority)

	_, err = m.Retriage(r, "critical")
	assert.ErrorIs(t, err, models.ErrValidation)

	resolved := advance(t, m, r,
		models.StatusAIProcessed, models.StatusAssigned, models.StatusInProgress, models.StatusResolved)
	_, err = m.Retriage(resolved, models.PriorityLow)
	assert.ErrorIs(t, err, models.ErrInvalidMutation)
}

func TestAllowed(t *testing.T) {
	assert.Equal(t, []models.Status{models.StatusVerification, models.StatusResolved}, Allowed(models.StatusInProgress))
	assert.Empty(t, Allowed(models.StatusResolved))

	allowed := Allowed(models.StatusReported)
	allowed[0] = models.StatusResolved
	assert.Equal(t, []models.Status{models.StatusAIProcessed}, Allowed(models.StatusReported))
}
