package models

import (
	"fmt"
	"strings"
)

// Status - этап жизненного цикла обращения
type Status string

const (
	StatusReported     Status = "reported"
	StatusAIProcessed  Status = "ai-processed"
	StatusAssigned     Status = "assigned"
	StatusInProgress   Status = "in-progress"
	StatusVerification Status = "verification"
	StatusResolved     Status = "resolved"
)

// Statuses перечисляет этапы в порядке продвижения
var Statuses = []Status{
	StatusReported,
	StatusAIProcessed,
	StatusAssigned,
	StatusInProgress,
	StatusVerification,
	StatusResolved,
}

var statusMeta = map[Status]struct {
	rank     int
	progress int
	label    string
}{
	StatusReported:     {0, 10, "Reported"},
	StatusAIProcessed:  {1, 25, "AI Processed"},
	StatusAssigned:     {2, 40, "Authority Assigned"},
	StatusInProgress:   {3, 65, "In Progress"},
	StatusVerification: {4, 85, "Verification"},
	StatusResolved:     {5, 100, "Resolved"},
}

// ParseStatus разбирает строковое представление статуса
func ParseStatus(value string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(value)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, value)
	}
	return s, nil
}

func (s Status) Valid() bool {
	_, ok := statusMeta[s]
	return ok
}

// Rank - позиция статуса в последовательности, -1 для неизвестного
func (s Status) Rank() int {
	if m, ok := statusMeta[s]; ok {
		return m.rank
	}
	return -1
}

// Progress возвращает процент выполнения, который показывается гражданину
func (s Status) Progress() int {
	return statusMeta[s].progress
}

func (s Status) Label() string {
	if m, ok := statusMeta[s]; ok {
		return m.label
	}
	return string(s)
}

// Terminal сообщает, что дальнейшие переходы невозможны
func (s Status) Terminal() bool {
	return s == StatusResolved
}

// RequiresDepartment - статусы, в которых у обращения обязан быть назначенный департамент
func (s Status) RequiresDepartment() bool {
	return s.Rank() >= StatusAssigned.Rank()
}

// Priority - срочность обращения
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// ParsePriority разбирает строковое представление приоритета
func ParsePriority(value string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown priority %q", ErrValidation, value)
	}
	return p, nil
}

func (p Priority) Valid() bool {
	return p.Rank() >= 0
}

func (p Priority) Rank() int {
	for i, candidate := range Priorities {
		if candidate == p {
			return i
		}
	}
	return -1
}

// Label - приоритет с заглавной буквы, как в описаниях таймлайна
func (p Priority) Label() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// Escalate поднимает приоритет на одну ступень, urgent остается urgent
func (p Priority) Escalate() Priority {
	r := p.Rank()
	if r < 0 || r == len(Priorities)-1 {
		return p
	}
	return Priorities[r+1]
}

// PriorityFromSeverity сопоставляет оценку гражданина (1-5) с приоритетом
func PriorityFromSeverity(severity int) Priority {
	switch {
	case severity >= 5:
		return PriorityUrgent
	case severity == 4:
		return PriorityHigh
	case severity == 3:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
