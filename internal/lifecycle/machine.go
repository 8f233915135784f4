// Package lifecycle содержит машину состояний обращения: таблицу допустимых
// переходов, смену статуса с записью в таймлайн и переоценку приоритета.
// Все операции чистые: на вход запись, на выход новая запись.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/civic_tracker/internal/models"
)

// SystemActor подставляется, когда инициатор перехода не указан
const SystemActor = "system"

// transitions - текущий статус -> допустимые следующие статусы
var transitions = map[models.Status][]models.Status{
	models.StatusReported:     {models.StatusAIProcessed},
	models.StatusAIProcessed:  {models.StatusAssigned},
	models.StatusAssigned:     {models.StatusAssigned, models.StatusInProgress},
	models.StatusInProgress:   {models.StatusVerification, models.StatusResolved},
	models.StatusVerification: {models.StatusResolved},
	models.StatusResolved:     {},
}

// Allowed возвращает статусы, в которые можно перейти из from
func Allowed(from models.Status) []models.Status {
	return append([]models.Status(nil), transitions[from]...)
}

// CanTransition сообщает, разрешен ли переход from -> to
func CanTransition(from, to models.Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Request - параметры перехода
type Request struct {
	Target      models.Status
	Actor       string
	Description string
	Department  string
	Evidence    []string
}

// Machine применяет переходы. Часы подменяются в тестах.
type Machine struct {
	now func() time.Time
}

func NewMachine(now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{now: now}
}

// Transition переводит запись в req.Target и добавляет ровно одну запись в таймлайн.
// Исходная запись не меняется.
func (m *Machine) Transition(record models.ProblemRecord, req Request) (models.ProblemRecord, error) {
	if !req.Target.Valid() {
		return record, fmt.Errorf("%w: unknown target status %q", models.ErrValidation, req.Target)
	}
	if !CanTransition(record.Status, req.Target) {
		return record, &models.TransitionError{From: record.Status, To: req.Target}
	}

	department := strings.TrimSpace(req.Department)
	next := *record.Clone()

	switch {
	case req.Target == models.StatusAssigned:
		if department == "" {
			return record, fmt.Errorf("%w: status %q requires a department", models.ErrMissingAssignment, req.Target)
		}
		if record.Status == models.StatusAssigned && strings.EqualFold(department, record.AssignedDepartment) {
			return record, fmt.Errorf("%w: problem is already assigned to %q", models.ErrInvalidMutation, record.AssignedDepartment)
		}
		next.AssignedDepartment = department
	case req.Target.RequiresDepartment():
		if next.AssignedDepartment == "" {
			return record, fmt.Errorf("%w: status %q requires a department", models.ErrMissingAssignment, req.Target)
		}
		if department != "" && department != next.AssignedDepartment {
			return record, fmt.Errorf("%w: department can only be changed while %q", models.ErrInvalidMutation, models.StatusAssigned)
		}
	}

	actor := strings.TrimSpace(req.Actor)
	if actor == "" {
		actor = SystemActor
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = defaultDescription(record.Status, req.Target, next.AssignedDepartment)
	}

	now := m.now()
	entry := models.TimelineEntry{
		Status:      req.Target,
		Timestamp:   now,
		Description: description,
		Actor:       actor,
	}
	if len(req.Evidence) > 0 {
		entry.Evidence = append([]string(nil), req.Evidence...)
	}

	next.Status = req.Target
	next.Timeline = append(next.Timeline, entry)
	next.UpdatedAt = now
	return next, nil
}

// Retriage меняет приоритет. Таймлайн не трогается.
func (m *Machine) Retriage(record models.ProblemRecord, priority models.Priority) (models.ProblemRecord, error) {
	if !priority.Valid() {
		return record, fmt.Errorf("%w: unknown priority %q", models.ErrValidation, priority)
	}
	if record.Status.Terminal() {
		return record, fmt.Errorf("%w: priority of a %q problem cannot change", models.ErrInvalidMutation, record.Status)
	}
	next := *record.Clone()
	next.Priority = priority
	next.UpdatedAt = m.now()
	return next, nil
}

func defaultDescription(from, to models.Status, department string) string {
	switch to {
	case models.StatusAIProcessed:
		return "Automatically processed"
	case models.StatusAssigned:
		if from == models.StatusAssigned {
			return fmt.Sprintf("Reassigned to %s", department)
		}
		return fmt.Sprintf("Assigned to %s", department)
	case models.StatusInProgress:
		return "Work initiated by " + department
	case models.StatusVerification:
		return "Work completed, awaiting verification"
	case models.StatusResolved:
		return "Problem resolved"
	}
	return to.Label()
}
