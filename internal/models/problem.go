package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Location - точка на карте и адрес, который видит пользователь
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Valid проверяет диапазоны координат
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// BoundingBox - прямоугольная область карты, границы включительно
type BoundingBox struct {
	MinLatitude  float64 `json:"min_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MaxLongitude float64 `json:"max_longitude"`
}

func (b BoundingBox) Contains(l Location) bool {
	return l.Latitude >= b.MinLatitude && l.Latitude <= b.MaxLatitude &&
		l.Longitude >= b.MinLongitude && l.Longitude <= b.MaxLongitude
}

// TimelineEntry - неизменяемая запись о смене статуса
type TimelineEntry struct {
	Status      Status    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Actor       string    `json:"actor,omitempty"`
	Evidence    []string  `json:"evidence,omitempty"`
}

// Engagement - счетчики активности граждан
type Engagement struct {
	Views    int `json:"views"`
	Supports int `json:"supports"`
	Shares   int `json:"shares"`
}

// ProblemRecord - обращение гражданина со всей историей
type ProblemRecord struct {
	ID                 uuid.UUID       `json:"id"`
	Sequence           int64           `json:"sequence"`
	Reference          string          `json:"reference"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	Severity           int             `json:"severity"`
	Priority           Priority        `json:"priority"`
	Status             Status          `json:"status"`
	Location           Location        `json:"location"`
	ReportedBy         string          `json:"reported_by,omitempty"`
	ReportedAt         time.Time       `json:"reported_at"`
	AssignedDepartment string          `json:"assigned_department,omitempty"`
	Timeline           []TimelineEntry `json:"timeline"`
	Engagement         Engagement      `json:"engagement"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Clone возвращает глубокую копию, которую можно менять без влияния на хранилище
func (p *ProblemRecord) Clone() *ProblemRecord {
	if p == nil {
		return nil
	}
	c := *p
	c.Timeline = make([]TimelineEntry, len(p.Timeline))
	for i, e := range p.Timeline {
		if e.Evidence != nil {
			e.Evidence = append([]string(nil), e.Evidence...)
		}
		c.Timeline[i] = e
	}
	return &c
}

// LastEntry возвращает последнюю запись таймлайна
func (p *ProblemRecord) LastEntry() (TimelineEntry, bool) {
	if len(p.Timeline) == 0 {
		return TimelineEntry{}, false
	}
	return p.Timeline[len(p.Timeline)-1], true
}

// ResolvedAt - момент перехода в resolved, если он был
func (p *ProblemRecord) ResolvedAt() (time.Time, bool) {
	for i := len(p.Timeline) - 1; i >= 0; i-- {
		if p.Timeline[i].Status == StatusResolved {
			return p.Timeline[i].Timestamp, true
		}
	}
	return time.Time{}, false
}

// CheckInvariants проверяет инварианты записи
func (p *ProblemRecord) CheckInvariants() error {
	last, ok := p.LastEntry()
	if !ok {
		return fmt.Errorf("%w: timeline of %s is empty", ErrInvalidMutation, p.ID)
	}
	if last.Status != p.Status {
		return fmt.Errorf("%w: last timeline status %q does not match status %q", ErrInvalidMutation, last.Status, p.Status)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidMutation, p.Status)
	}
	if !p.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidMutation, p.Priority)
	}
	hasDepartment := p.AssignedDepartment != ""
	if p.Status.RequiresDepartment() && !hasDepartment {
		return fmt.Errorf("%w: status %q requires a department", ErrMissingAssignment, p.Status)
	}
	if !p.Status.RequiresDepartment() && hasDepartment {
		return fmt.Errorf("%w: department cannot be set in status %q", ErrInvalidMutation, p.Status)
	}
	return nil
}

// Submission - заявка гражданина, из которой создается обращение
type Submission struct {
	Title       string
	Description string
	Category    string
	Severity    int
	Location    Location
	PhotoURL    string
	ReportedBy  string
}

// Photo - сохраненное фото-доказательство
type Photo struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
	URL         string    `json:"url"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
