package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shenikar/civic_tracker/internal/models"
)

func applyMutation(record *models.ProblemRecord, m models.Mutation) error {
	switch m.Field {
	case models.FieldAssignedDepartment:
		if record.Status != models.StatusAssigned {
			return fmt.Errorf("%w: department can only be changed while %q", models.ErrInvalidMutation, models.StatusAssigned)
		}
		department := strings.TrimSpace(m.Value)
		if department == "" {
			return fmt.Errorf("%w: department must not be empty", models.ErrMissingAssignment)
		}
		record.AssignedDepartment = department

	case models.FieldViews:
		if m.Count < 0 {
			return fmt.Errorf("%w: views must not be negative", models.ErrValidation)
		}
		record.Engagement.Views = m.Count

	case models.FieldSupports, models.FieldShares:
		if m.Count < 0 {
			return fmt.Errorf("%w: %s can only grow", models.ErrInvalidMutation, m.Field)
		}
		if m.Field == models.FieldSupports {
			record.Engagement.Supports += m.Count
		} else {
			record.Engagement.Shares += m.Count
		}

	case models.FieldPriority:
		return fmt.Errorf("%w: priority changes only through re-triage", models.ErrInvalidMutation)

	case models.FieldStatus, models.FieldTimeline:
		return fmt.Errorf("%w: %s changes only through a status transition", models.ErrInvalidMutation, m.Field)

	case models.FieldID, models.FieldReference, models.FieldTitle, models.FieldDescription,
		models.FieldCategory, models.FieldSeverity, models.FieldLocation,
		models.FieldReportedAt, models.FieldReportedBy:
		return fmt.Errorf("%w: %s is immutable", models.ErrInvalidMutation, m.Field)

	default:
		return fmt.Errorf("%w: unknown field %q", models.ErrValidation, m.Field)
	}
	return nil
}

// checkImmutable сверяет неизменяемые поля и то, что таймлайн только дописывается
func checkImmutable(current, next *models.ProblemRecord) error {
	switch {
	case next.ID != current.ID:
		return immutable(models.FieldID)
	case next.Sequence != current.Sequence, next.Reference != current.Reference:
		return immutable(models.FieldReference)
	case next.Title != current.Title:
		return immutable(models.FieldTitle)
	case next.Description != current.Description:
		return immutable(models.FieldDescription)
	case next.Category != current.Category:
		return immutable(models.FieldCategory)
	case next.Severity != current.Severity:
		return immutable(models.FieldSeverity)
	case next.Location != current.Location:
		return immutable(models.FieldLocation)
	case !next.ReportedAt.Equal(current.ReportedAt):
		return immutable(models.FieldReportedAt)
	case next.ReportedBy != current.ReportedBy:
		return immutable(models.FieldReportedBy)
	}

	if next.Engagement.Supports < current.Engagement.Supports || next.Engagement.Shares < current.Engagement.Shares {
		return fmt.Errorf("%w: engagement counters can only grow", models.ErrInvalidMutation)
	}

	if len(next.Timeline) < len(current.Timeline) {
		return fmt.Errorf("%w: timeline entries cannot be removed", models.ErrInvalidMutation)
	}
	for i, entry := range current.Timeline {
		if !sameEntry(entry, next.Timeline[i]) {
			return fmt.Errorf("%w: timeline entry %d cannot be rewritten", models.ErrInvalidMutation, i)
		}
	}
	if len(next.Timeline) > len(current.Timeline)+1 {
		return fmt.Errorf("%w: only one timeline entry can be appended at a time", models.ErrInvalidMutation)
	}
	if len(next.Timeline) == len(current.Timeline) && next.Status != current.Status {
		return fmt.Errorf("%w: status change without a timeline entry", models.ErrInvalidMutation)
	}
	return nil
}

func sameEntry(a, b models.TimelineEntry) bool {
	return a.Status == b.Status &&
		a.Timestamp.Equal(b.Timestamp) &&
		a.Description == b.Description &&
		a.Actor == b.Actor &&
		slices.Equal(a.Evidence, b.Evidence)
}

func immutable(field models.Field) error {
	return fmt.Errorf("%w: %s is immutable", models.ErrInvalidMutation, field)
}
