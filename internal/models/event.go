package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType - тип события жизненного цикла, он же routing key в брокере
type EventType string

const (
	EventCreated      EventType = "problem.created"
	EventTransitioned EventType = "problem.transitioned"
	EventRetriaged    EventType = "problem.retriaged"
	EventUpdated      EventType = "problem.updated"
)

// ProblemEvent публикуется после того, как изменение зафиксировано в хранилище
type ProblemEvent struct {
	Type           EventType `json:"type"`
	ProblemID      uuid.UUID `json:"problem_id"`
	Reference      string    `json:"reference"`
	Status         Status    `json:"status"`
	PreviousStatus Status    `json:"previous_status,omitempty"`
	Priority       Priority  `json:"priority"`
	Department     string    `json:"department,omitempty"`
	Actor          string    `json:"actor,omitempty"`
	Field          Field     `json:"field,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewProblemEvent собирает событие по зафиксированной записи
func NewProblemEvent(t EventType, record *ProblemRecord, previous Status) ProblemEvent {
	e := ProblemEvent{
		Type:           t,
		ProblemID:      record.ID,
		Reference:      record.Reference,
		Status:         record.Status,
		PreviousStatus: previous,
		Priority:       record.Priority,
		Department:     record.AssignedDepartment,
		Timestamp:      record.UpdatedAt,
	}
	if last, ok := record.LastEntry(); ok {
		e.Actor = last.Actor
	}
	return e
}
