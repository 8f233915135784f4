package metrics

import (
	"testing"
	"time"

	"github.com/shenikar/civic_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportedAt = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

func record(category string, status models.Status, department string, resolvedAfter time.Duration) *models.ProblemRecord {
	r := &models.ProblemRecord{
		Category:           category,
		Status:             status,
		Priority:           models.PriorityMedium,
		AssignedDepartment: department,
		ReportedAt:         reportedAt,
		Timeline: []models.TimelineEntry{
			{Status: models.StatusReported, Timestamp: reportedAt},
		},
	}
	if status == models.StatusResolved {
		r.Timeline = append(r.Timeline, models.TimelineEntry{Status: models.StatusResolved, Timestamp: reportedAt.Add(resolvedAfter)})
	}
	return r
}

func TestSummarize_Empty(t *testing.T) {
	m := Summarize(nil)

	assert.Equal(t, 0, m.Total)
	assert.Equal(t, 0.0, m.ResolutionRate)
	assert.Nil(t, m.AverageResolutionTime)
	assert.Empty(t, m.ByCategory)
	assert.Len(t, m.ByStatus, len(models.Statuses))
	for _, s := range models.Statuses {
		assert.Zero(t, m.ByStatus[s])
	}
}

func TestSummarize_CountsAndRates(t *testing.T) {
	records := []*models.ProblemRecord{
		record("Water Supply", models.StatusResolved, "Water Department", 48*time.Hour),
		record("Water Supply", models.StatusInProgress, "Water Department", 0),
		record("Infrastructure", models.StatusResolved, "Roads Dept", 24*time.Hour),
		record("Infrastructure", models.StatusReported, "", 0),
	}
	records[1].Priority = models.PriorityUrgent

	m := Summarize(records)

	assert.Equal(t, 4, m.Total)
	assert.Equal(t, 2, m.Active)
	assert.Equal(t, 2, m.ByStatus[models.StatusResolved])
	assert.Equal(t, 1, m.ByStatus[models.StatusInProgress])
	assert.Equal(t, 1, m.ByStatus[models.StatusReported])
	assert.Equal(t, 0, m.ByStatus[models.StatusVerification])
	assert.Equal(t, 3, m.ByPriority[models.PriorityMedium])
	assert.Equal(t, 1, m.ByPriority[models.PriorityUrgent])
	assert.InDelta(t, 0.5, m.ResolutionRate, 1e-9)

	require.NotNil(t, m.AverageResolutionTime)
	assert.Equal(t, 36*time.Hour, *m.AverageResolutionTime)

	assert.Equal(t, []CategoryCount{
		{Category: "Water Supply", Count: 2, Percentage: 50},
		{Category: "Infrastructure", Count: 2, Percentage: 50},
	}, m.ByCategory)

	require.Len(t, m.ByDepartment, 2)
	water := m.ByDepartment[0]
	assert.Equal(t, "Water Department", water.Department)
	assert.Equal(t, 1, water.Active)
	assert.Equal(t, 1, water.Resolved)
	require.NotNil(t, water.AverageResolutionTime)
	assert.Equal(t, 48*time.Hour, *water.AverageResolutionTime)
}

func TestSummarize_NoResolvedOmitsAverage(t *testing.T) {
	m := Summarize([]*models.ProblemRecord{record("Environment", models.StatusAssigned, "Parks", 0)})

	assert.Nil(t, m.AverageResolutionTime)
	assert.Equal(t, 0.0, m.ResolutionRate)
	require.Len(t, m.ByDepartment, 1)
	assert.Nil(t, m.ByDepartment[0].AverageResolutionTime)
}

func TestSummarize_PercentagesRoundIndependently(t *testing.T) {
	records := []*models.ProblemRecord{
		record("A", models.StatusReported, "", 0),
		record("B", models.StatusReported, "", 0),
		record("C", models.StatusReported, "", 0),
	}

	m := Summarize(records)

	sum := 0
	for _, c := range m.ByCategory {
		assert.Equal(t, 33, c.Percentage)
		sum += c.Percentage
	}
	// 33 + 33 + 33: сумма не нормализуется до 100
	assert.Equal(t, 99, sum)
}

func TestSummarize_PercentagesCanExceedHundred(t *testing.T) {
	var records []*models.ProblemRecord
	for _, c := range []string{"A", "B", "C", "C", "D", "D", "D", "E"} {
		records = append(records, record(c, models.StatusReported, "", 0))
	}

	m := Summarize(records)

	sum := 0
	for _, c := range m.ByCategory {
		sum += c.Percentage
	}
	// 12.5 -> 13 (три раза), 25, 37.5 -> 38
	assert.Equal(t, 102, sum)
}
