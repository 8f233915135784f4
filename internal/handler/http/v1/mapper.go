package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/civic_tracker/internal/departments"
	"github.com/shenikar/civic_tracker/internal/geo"
	"github.com/shenikar/civic_tracker/internal/lifecycle"
	"github.com/shenikar/civic_tracker/internal/metrics"
	"github.com/shenikar/civic_tracker/internal/models"
	"github.com/shenikar/civic_tracker/internal/query"
	"github.com/shenikar/civic_tracker/internal/triage"
)

// departmentLookup ищет контакты департамента для ответа
type departmentLookup func(name string) (departments.Department, bool)

// DTOToSubmission преобразует DTO подачи в заявку. Числовые координаты имеют приоритет над строкой.
func DTOToSubmission(dto CreateProblemRequest) (models.Submission, error) {
	sub := models.Submission{
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		Severity:    dto.Severity,
		PhotoURL:    dto.PhotoURL,
		ReportedBy:  dto.ReportedBy,
	}

	switch {
	case dto.Latitude != nil && dto.Longitude != nil:
		sub.Location = models.Location{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
	case strings.TrimSpace(dto.Coordinates) != "":
		loc, err := geo.ParseCoordinates(dto.Coordinates)
		if err != nil {
			return sub, err
		}
		sub.Location = loc
	default:
		return sub, fmt.Errorf("%w: latitude and longitude or coordinates are required", models.ErrValidation)
	}
	sub.Location.Address = strings.TrimSpace(dto.Address)
	return sub, nil
}

// DTOToTransitionRequest преобразует DTO смены статуса
func DTOToTransitionRequest(dto TransitionRequest) (lifecycle.Request, error) {
	target, err := models.ParseStatus(dto.Status)
	if err != nil {
		return lifecycle.Request{}, err
	}
	return lifecycle.Request{
		Target:      target,
		Actor:       dto.Actor,
		Description: dto.Description,
		Department:  dto.Department,
		Evidence:    dto.Evidence,
	}, nil
}

// DTOToMutation преобразует DTO изменения поля
func DTOToMutation(dto UpdateProblemRequest) models.Mutation {
	return models.Mutation{
		Field: models.Field(strings.ToLower(strings.TrimSpace(dto.Field))),
		Value: dto.Value,
		Count: dto.Count,
	}
}

// ModelToProblemResponse преобразует доменную модель в DTO для ответа
func ModelToProblemResponse(model *models.ProblemRecord, lookup departmentLookup) *ProblemResponse {
	resp := &ProblemResponse{
		ID:          model.ID,
		Reference:   model.Reference,
		Title:       model.Title,
		Description: model.Description,
		Category:    model.Category,
		Severity:    model.Severity,
		Priority:    model.Priority,
		Status:      model.Status,
		StatusLabel: model.Status.Label(),
		Progress:    model.Status.Progress(),
		Location: LocationResponse{
			Latitude:    model.Location.Latitude,
			Longitude:   model.Location.Longitude,
			Address:     model.Location.Address,
			Coordinates: geo.Format(model.Location),
		},
		ReportedBy:         model.ReportedBy,
		ReportedAt:         model.ReportedAt,
		AssignedDepartment: model.AssignedDepartment,
		AllowedNext:        lifecycle.Allowed(model.Status),
		Timeline:           make([]TimelineEntryResponse, len(model.Timeline)),
		Engagement:         model.Engagement,
		UpdatedAt:          model.UpdatedAt,
	}
	if resolvedAt, ok := model.ResolvedAt(); ok {
		resp.ResolvedAt = &resolvedAt
	}
	if model.AssignedDepartment != "" && lookup != nil {
		if dep, ok := lookup(model.AssignedDepartment); ok {
			resp.AssignedTo = &dep
		}
	}
	for i, e := range model.Timeline {
		resp.Timeline[i] = TimelineEntryResponse{
			Status:      e.Status,
			Label:       e.Status.Label(),
			Timestamp:   e.Timestamp,
			Description: e.Description,
			Actor:       e.Actor,
			Evidence:    e.Evidence,
		}
	}
	return resp
}

// PageToListResponse преобразует страницу выдачи в DTO
func PageToListResponse(page query.Page, lookup departmentLookup) *ProblemListResponse {
	items := make([]*ProblemResponse, len(page.Items))
	for i, model := range page.Items {
		items[i] = ModelToProblemResponse(model, lookup)
	}
	return &ProblemListResponse{
		Items:    items,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}

// PredictionToResponse преобразует результат классификации
func PredictionToResponse(p *triage.Prediction) PredictionResponse {
	return PredictionResponse{
		Category:        p.Category,
		Priority:        p.Priority,
		Confidence:      p.Confidence,
		MatchedKeywords: p.MatchedKeywords,
	}
}

// MetricsToResponse преобразует сводку, длительности переводятся в часы
func MetricsToResponse(m *metrics.Metrics) *MetricsResponse {
	resp := &MetricsResponse{
		Total:                      m.Total,
		Active:                     m.Active,
		ByStatus:                   m.ByStatus,
		ByPriority:                 m.ByPriority,
		ByCategory:                 make([]CategoryShareResponse, len(m.ByCategory)),
		ByDepartment:               make([]DepartmentStatsResponse, len(m.ByDepartment)),
		ResolutionRate:             m.ResolutionRate,
		AverageResolutionTimeHours: hours(m.AverageResolutionTime),
	}
	for i, c := range m.ByCategory {
		resp.ByCategory[i] = CategoryShareResponse{Category: c.Category, Count: c.Count, Percentage: c.Percentage}
	}
	for i, d := range m.ByDepartment {
		resp.ByDepartment[i] = DepartmentStatsResponse{
			Department:                 d.Department,
			Active:                     d.Active,
			Resolved:                   d.Resolved,
			AverageResolutionTimeHours: hours(d.AverageResolutionTime),
		}
	}
	return resp
}

// ModelToPhotoResponse преобразует фото в DTO без содержимого
func ModelToPhotoResponse(p *models.Photo) *PhotoResponse {
	return &PhotoResponse{
		ID:          p.ID,
		URL:         p.URL,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		CreatedAt:   p.CreatedAt,
	}
}

func hours(d *time.Duration) *float64 {
	if d == nil {
		return nil
	}
	h := d.Hours()
	return &h
}
