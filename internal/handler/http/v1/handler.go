package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/civic_tracker/internal/config"
	"github.com/shenikar/civic_tracker/internal/geo"
	"github.com/shenikar/civic_tracker/internal/lifecycle"
	"github.com/shenikar/civic_tracker/internal/models"
	"github.com/shenikar/civic_tracker/internal/query"
	"github.com/shenikar/civic_tracker/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	problemService service.ProblemService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(problemService service.ProblemService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		problemService: problemService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// @Summary Submit a new problem
// @Description Submit a civic problem report. The problem starts in the "reported" status.
// @Tags Problems
// @Accept json
// @Produce json
// @Param problem body CreateProblemRequest true "Problem submission"
// @Success 201 {object} ProblemResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 502 {object} map[string]string "Storage unavailable"
// @Router /problems [post]
func (h *Handler) createProblem(c *gin.Context) {
	var input CreateProblemRequest
	log := h.logger.WithField("method", "createProblem")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := DTOToSubmission(input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	record, err := h.problemService.SubmitProblem(c.Request.Context(), sub)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToProblemResponse(record, h.problemService.LookupDepartment))
}

// @Summary Get a list of problems
// @Description Filter, sort and paginate problems. Filters are combined with AND; "all" disables a filter.
// @Tags Problems
// @Produce json
// @Param status query string false "Exact status" Enums(all, reported, ai-processed, assigned, in-progress, verification, resolved)
// @Param category query string false "Case-insensitive category substring"
// @Param priority query string false "Exact priority" Enums(all, low, medium, high, urgent)
// @Param search query string false "Case-insensitive substring of title or address"
// @Param bbox query string false "minLat,minLng,maxLat,maxLng"
// @Param sort query string false "Order" Enums(newest, oldest, priority)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} ProblemListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /problems [get]
func (h *Handler) listProblems(c *gin.Context) {
	log := h.logger.WithField("method", "listProblems")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	criteria := query.Criteria{
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		Priority:   c.Query("priority"),
		SearchText: c.Query("search"),
	}
	sortBy, err := query.ParseSortBy(c.Query("sort"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	criteria.SortBy = sortBy
	if bbox := c.Query("bbox"); bbox != "" {
		box, err := geo.ParseBoundingBox(bbox)
		if err != nil {
			h.respondError(c, log, err)
			return
		}
		criteria.BoundingBox = box
	}

	result, err := h.problemService.ListProblems(c.Request.Context(), criteria, page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, PageToListResponse(result, h.problemService.LookupDepartment))
}

// @Summary Get problem by ID
// @Description Get a single problem with its full timeline
// @Tags Problems
// @Produce json
// @Param id path string true "Problem ID"
// @Success 200 {object} ProblemResponse
// @Failure 400 {object} map[string]string "Invalid problem ID"
// @Failure 404 {object} map[string]string "Problem not found"
// @Router /problems/{id} [get]
func (h *Handler) getProblem(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getProblem").WithField("id", id)

	record, err := h.problemService.GetProblem(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProblemResponse(record, h.problemService.LookupDepartment))
}

// @Summary Record a view
// @Tags Engagement
// @Produce json
// @Param id path string true "Problem ID"
// @Success 200 {object} ProblemResponse
// @Failure 404 {object} map[string]string "Problem not found"
// @Router /problems/{id}/view [post]
func (h *Handler) viewProblem(c *gin.Context) {
	h.recordEngagement(c, models.FieldViews)
}

// @Summary Support a problem
// @Tags Engagement
// @Produce json
// @Param id path string true "Problem ID"
// @Success 200 {object} ProblemResponse
// @Failure 404 {object} map[string]string "Problem not found"
// @Router /problems/{id}/support [post]
func (h *Handler) supportProblem(c *gin.Context) {
	h.recordEngagement(c, models.FieldSupports)
}

// @Summary Share a problem
// @Tags Engagement
// @Produce json
// @Param id path string true "Problem ID"
// @Success 200 {object} ProblemResponse
// @Failure 404 {object} map[string]string "Problem not found"
// @Router /problems/{id}/share [post]
func (h *Handler) shareProblem(c *gin.Context) {
	h.recordEngagement(c, models.FieldShares)
}

func (h *Handler) recordEngagement(c *gin.Context, field models.Field) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "recordEngagement").WithField("id", id).WithField("field", field)

	record, err := h.problemService.RecordEngagement(c.Request.Context(), id, field)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProblemResponse(record, h.problemService.LookupDepartment))
}

// @Summary Transition a problem
// @Description Move a problem to the next lifecycle status. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Problem ID"
// @Param transition body TransitionRequest true "Transition request"
// @Success 200 {object} ProblemResponse
// @Failure 400 {object} map[string]string "Invalid request body or unknown status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Problem not found"
// @Failure 409 {object} map[string]string "Illegal transition"
// @Failure 422 {object} map[string]string "Missing department assignment"
// @Router /problems/{id}/transitions [post]
func (h *Handler) transitionProblem(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "transitionProblem").WithField("id", id)

	var input TransitionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := DTOToTransitionRequest(input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	record, err := h.problemService.TransitionProblem(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProblemResponse(record, h.problemService.LookupDepartment))
}

// @Summary Re-triage a problem
// @Description Change the priority of a non-resolved problem. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Problem ID"
// @Param priority body PriorityRequest true "New priority"
// @Success 200 {object} ProblemResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Problem not found"
// @Failure 422 {object} map[string]string "Problem is resolved"
// @Router /problems/{id}/priority [put]
func (h *Handler) retriageProblem(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "retriageProblem").WithField("id", id)

	var input PriorityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.problemService.RetriageProblem(c.Request.Context(), id, models.Priority(input.Priority))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProblemResponse(record, h.problemService.LookupDepartment))
}

// @Summary Update a problem field
// @Description Change one mutable field (assigned_department, views, supports, shares). Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Problem ID"
// @Param mutation body UpdateProblemRequest true "Field mutation"
// @Success 200 {object} ProblemResponse
// @Failure 400 {object} map[string]string "Invalid request body or unknown field"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Problem not found"
// @Failure 422 {object} map[string]string "Field cannot be changed"
// @Router /problems/{id} [patch]
func (h *Handler) updateProblem(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateProblem").WithField("id", id)

	var input UpdateProblemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.problemService.UpdateProblem(c.Request.Context(), id, DTOToMutation(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProblemResponse(record, h.problemService.LookupDepartment))
}

// @Summary Run automatic triage
// @Description Classify a reported problem and move it to "ai-processed". Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Problem ID"
// @Success 200 {object} TriageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Problem not found"
// @Failure 409 {object} map[string]string "Problem is already processed"
// @Router /problems/{id}/triage [post]
func (h *Handler) triageProblem(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "triageProblem").WithField("id", id)

	record, prediction, err := h.problemService.AutoTriage(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, TriageResponse{
		Problem:    ModelToProblemResponse(record, h.problemService.LookupDepartment),
		Prediction: PredictionToResponse(prediction),
	})
}

// @Summary Get dashboard metrics
// @Description Aggregated counts per status, priority, category and department
// @Tags Metrics
// @Produce json
// @Success 200 {object} MetricsResponse
// @Router /metrics [get]
func (h *Handler) getMetrics(c *gin.Context) {
	log := h.logger.WithField("method", "getMetrics")

	m, err := h.problemService.GetMetrics(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MetricsToResponse(m))
}

// @Summary Upload photo evidence
// @Description Store an image and return its URL for use in a submission or transition evidence
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Image file"
// @Success 201 {object} PhotoResponse
// @Failure 400 {object} map[string]string "Missing file or not an image"
// @Failure 502 {object} map[string]string "Storage unavailable"
// @Router /photos [post]
func (h *Handler) uploadPhoto(c *gin.Context) {
	log := h.logger.WithField("method", "uploadPhoto")

	header, err := c.FormFile("photo")
	if err != nil {
		log.WithError(err).Warn("Missing photo file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	if header.Size > h.cfg.MaxPhotoBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("photo exceeds %d bytes", h.cfg.MaxPhotoBytes)})
		return
	}

	file, err := header.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.cfg.MaxPhotoBytes+1))
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo file"})
		return
	}

	photo, err := h.problemService.UploadPhoto(c.Request.Context(), header.Filename, data)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToPhotoResponse(photo))
}

// @Summary Download photo
// @Tags Photos
// @Produce image/jpeg,image/png,image/webp
// @Param id path string true "Photo ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Photo not found"
// @Router /photos/{id} [get]
func (h *Handler) getPhoto(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getPhoto").WithField("id", id)

	photo, err := h.problemService.GetPhoto(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, photo.ContentType, photo.Data)
}

// @Summary List departments
// @Description Departments that problems can be assigned to, with contacts
// @Tags Departments
// @Produce json
// @Success 200 {array} departments.Department
// @Router /departments [get]
func (h *Handler) listDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, h.problemService.ListDepartments())
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

// errorStatus сопоставляет вид ошибки с HTTP-статусом
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, models.ErrMissingAssignment), errors.Is(err, models.ErrInvalidMutation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrCollaborator):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}

	switch status {
	case http.StatusInternalServerError:
		c.JSON(status, gin.H{"error": "internal server error"})
	case http.StatusBadGateway:
		c.JSON(status, gin.H{"error": "storage unavailable"})
	case http.StatusConflict:
		body := gin.H{"error": err.Error()}
		var te *models.TransitionError
		if errors.As(err, &te) {
			body["allowed"] = lifecycle.Allowed(te.From)
		}
		c.JSON(status, body)
	default:
		c.JSON(status, gin.H{"error": err.Error()})
	}
}
