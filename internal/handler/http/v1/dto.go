package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/civic_tracker/internal/departments"
	"github.com/shenikar/civic_tracker/internal/models"
)

// CreateProblemRequest DTO для подачи обращения
// @Description DTO для подачи обращения. Координаты передаются числами или строкой "lat, lng".
type CreateProblemRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Description string   `json:"description,omitempty" validate:"max=2000"`
	Category    string   `json:"category" validate:"required,max=100"`
	Severity    int      `json:"severity" validate:"required,min=1,max=5"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Coordinates string   `json:"coordinates,omitempty"`
	Address     string   `json:"address,omitempty" validate:"max=500"`
	PhotoURL    string   `json:"photo_url,omitempty" validate:"omitempty,url"`
	ReportedBy  string   `json:"reported_by,omitempty" validate:"max=100"`
}

// TransitionRequest DTO для смены статуса
// @Description DTO для смены статуса
type TransitionRequest struct {
	Status      string   `json:"status" validate:"required"`
	Actor       string   `json:"actor,omitempty" validate:"max=100"`
	Description string   `json:"description,omitempty" validate:"max=1000"`
	Department  string   `json:"department,omitempty" validate:"max=200"`
	Evidence    []string `json:"evidence,omitempty" validate:"omitempty,dive,url"`
}

// PriorityRequest DTO для переоценки приоритета
// @Description DTO для переоценки приоритета
type PriorityRequest struct {
	Priority string `json:"priority" validate:"required,oneof=low medium high urgent"`
}

// UpdateProblemRequest DTO для изменения одного поля
// @Description DTO для изменения одного поля. Value - для строковых полей, count - для счетчиков.
type UpdateProblemRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value,omitempty"`
	Count int    `json:"count,omitempty"`
}

// LocationResponse DTO места обращения
type LocationResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address,omitempty"`
	Coordinates string  `json:"coordinates"`
}

// TimelineEntryResponse DTO записи таймлайна
type TimelineEntryResponse struct {
	Status      models.Status `json:"status"`
	Label       string        `json:"label"`
	Timestamp   time.Time     `json:"timestamp"`
	Description string        `json:"description"`
	Actor       string        `json:"actor,omitempty"`
	Evidence    []string      `json:"evidence,omitempty"`
}

// ProblemResponse DTO для ответа с информацией об обращении
// @Description DTO для ответа с информацией об обращении
type ProblemResponse struct {
	ID                 uuid.UUID               `json:"id"`
	Reference          string                  `json:"reference"`
	Title              string                  `json:"title"`
	Description        string                  `json:"description,omitempty"`
	Category           string                  `json:"category"`
	Severity           int                     `json:"severity"`
	Priority           models.Priority         `json:"priority"`
	Status             models.Status           `json:"status"`
	StatusLabel        string                  `json:"status_label"`
	Progress           int                     `json:"progress"`
	Location           LocationResponse        `json:"location"`
	ReportedBy         string                  `json:"reported_by,omitempty"`
	ReportedAt         time.Time               `json:"reported_at"`
	ResolvedAt         *time.Time              `json:"resolved_at,omitempty"`
	AssignedDepartment string                  `json:"assigned_department,omitempty"`
	AssignedTo         *departments.Department `json:"assigned_to,omitempty"`
	AllowedNext        []models.Status         `json:"allowed_next"`
	Timeline           []TimelineEntryResponse `json:"timeline"`
	Engagement         models.Engagement       `json:"engagement"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// ProblemListResponse DTO страницы обращений
// @Description DTO страницы обращений
type ProblemListResponse struct {
	Items    []*ProblemResponse `json:"items"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// PredictionResponse DTO результата автоматической обработки
type PredictionResponse struct {
	Category        string          `json:"category"`
	Priority        models.Priority `json:"priority"`
	Confidence      float64         `json:"confidence"`
	MatchedKeywords []string        `json:"matched_keywords,omitempty"`
}

// TriageResponse DTO для ответа на автоматическую обработку
// @Description DTO для ответа на автоматическую обработку
type TriageResponse struct {
	Problem    *ProblemResponse   `json:"problem"`
	Prediction PredictionResponse `json:"prediction"`
}

// CategoryShareResponse DTO доли категории
type CategoryShareResponse struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// DepartmentStatsResponse DTO нагрузки на департамент
type DepartmentStatsResponse struct {
	Department                 string   `json:"department"`
	Active                     int      `json:"active"`
	Resolved                   int      `json:"resolved"`
	AverageResolutionTimeHours *float64 `json:"average_resolution_time_hours,omitempty"`
}

// MetricsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type MetricsResponse struct {
	Total                      int                       `json:"total"`
	Active                     int                       `json:"active"`
	ByStatus                   map[models.Status]int     `json:"by_status"`
	ByPriority                 map[models.Priority]int   `json:"by_priority"`
	ByCategory                 []CategoryShareResponse   `json:"by_category"`
	ByDepartment               []DepartmentStatsResponse `json:"by_department"`
	ResolutionRate             float64                   `json:"resolution_rate"`
	AverageResolutionTimeHours *float64                  `json:"average_resolution_time_hours,omitempty"`
}

// PhotoResponse DTO сохраненного фото
// @Description DTO сохраненного фото
type PhotoResponse struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Filename    string    `json:"filename,omitempty"`
	ContentType string    `json:"content_type"`
	Size        int       `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
