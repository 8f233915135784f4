package service

//go:generate mockgen -source=problem.go -destination=mocks/mock_problem.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/shenikar/civic_tracker/internal/config"
	"github.com/shenikar/civic_tracker/internal/departments"
	"github.com/shenikar/civic_tracker/internal/lifecycle"
	"github.com/shenikar/civic_tracker/internal/metrics"
	"github.com/shenikar/civic_tracker/internal/models"
	"github.com/shenikar/civic_tracker/internal/query"
	"github.com/shenikar/civic_tracker/internal/store"
	"github.com/shenikar/civic_tracker/internal/triage"
	"github.com/sirupsen/logrus"
)

// PhotoRepository определяет контракт хранилища фото-доказательств
type PhotoRepository interface {
	SavePhoto(ctx context.Context, photo *models.Photo) error
	GetPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error)
}

// MetricsCache определяет контракт кеша метрик. Промах - (nil, nil).
type MetricsCache interface {
	GetMetricsFromCache(ctx context.Context, key string) (*metrics.Metrics, error)
	SetMetricsCache(ctx context.Context, key string, m *metrics.Metrics, ttl time.Duration) error
}

// EventPublisher публикует события жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, event models.ProblemEvent) error
}

// ProblemService определяет контракт бизнес-логики обращений
type ProblemService interface {
	SubmitProblem(ctx context.Context, sub models.Submission) (*models.ProblemRecord, error)
	GetProblem(ctx context.Context, id uuid.UUID) (*models.ProblemRecord, error)
	ListProblems(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Page, error)
	TransitionProblem(ctx context.Context, id uuid.UUID, req lifecycle.Request) (*models.ProblemRecord, error)
	RetriageProblem(ctx context.Context, id uuid.UUID, priority models.Priority) (*models.ProblemRecord, error)
	UpdateProblem(ctx context.Context, id uuid.UUID, m models.Mutation) (*models.ProblemRecord, error)
	RecordEngagement(ctx context.Context, id uuid.UUID, field models.Field) (*models.ProblemRecord, error)
	AutoTriage(ctx context.Context, id uuid.UUID) (*models.ProblemRecord, *triage.Prediction, error)
	GetMetrics(ctx context.Context) (*metrics.Metrics, error)
	UploadPhoto(ctx context.Context, filename string, data []byte) (*models.Photo, error)
	GetPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error)
	ListDepartments() []departments.Department
	LookupDepartment(name string) (departments.Department, bool)
}

// Deps - зависимости сервиса. Directory, Photos, Cache и Events могут быть nil.
type Deps struct {
	Store      *store.Store
	Machine    *lifecycle.Machine
	Classifier *triage.Classifier
	Directory  *departments.Directory
	Photos     PhotoRepository
	Cache      MetricsCache
	Events     EventPublisher
}

type problemService struct {
	store      *store.Store
	machine    *lifecycle.Machine
	classifier *triage.Classifier
	directory  *departments.Directory
	photos     PhotoRepository
	cache      MetricsCache
	events     EventPublisher
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewProblemService(deps Deps, logger *logrus.Logger, cfg *config.Config) ProblemService {
	if deps.Machine == nil {
		deps.Machine = lifecycle.NewMachine(nil)
	}
	if deps.Classifier == nil {
		deps.Classifier = triage.NewClassifier()
	}
	return &problemService{
		store:      deps.Store,
		machine:    deps.Machine,
		classifier: deps.Classifier,
		directory:  deps.Directory,
		photos:     deps.Photos,
		cache:      deps.Cache,
		events:     deps.Events,
		logger:     logger,
		cfg:        cfg,
	}
}

// SubmitProblem заводит обращение; при AUTO_TRIAGE сразу выполняет автоматическую обработку
func (s *problemService) SubmitProblem(ctx context.Context, sub models.Submission) (*models.ProblemRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "problem",
		"method":   "SubmitProblem",
		"category": sub.Category,
	})
	log.Info("Attempting to submit a new problem")

	record, err := s.store.Create(ctx, sub)
	if err != nil {
		log.WithError(err).Warn("Failed to create problem in store")
		return nil, fmt.Errorf("service: could not submit problem: %w", err)
	}
	log = log.WithField("problem_id", record.ID)
	log.WithField("reference", record.Reference).Info("Problem submitted successfully")
	s.publish(ctx, models.NewProblemEvent(models.EventCreated, record, ""))

	if !s.cfg.AutoTriage {
		return record, nil
	}
	triaged, _, err := s.AutoTriage(ctx, record.ID)
	if err != nil {
		// обращение уже создано, обработку можно повторить через /triage
		log.WithError(err).Warn("Automatic triage failed")
		return record, nil
	}
	return triaged, nil
}

// GetProblem получает обращение по ID
func (s *problemService) GetProblem(ctx context.Context, id uuid.UUID) (*models.ProblemRecord, error) {
	record, err := s.store.Get(id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "problem",
			"method":     "GetProblem",
			"problem_id": id,
		}).WithError(err).Debug("Problem not found")
		return nil, fmt.Errorf("service: not get problem: %w", err)
	}
	return record, nil
}

// ListProblems фильтрует, сортирует и режет на страницы снимок хранилища
func (s *problemService) ListProblems(ctx context.Context, criteria query.Criteria, page, pageSize int) (query.Page, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "problem",
		"method":    "ListProblems",
		"page":      page,
		"page_size": pageSize,
	})

	filtered := query.Filter(s.store.List(), criteria)
	result := query.Paginate(query.Sort(filtered, criteria.SortBy), page, pageSize)

	log.WithField("count", len(result.Items)).Debug("Problems listed successfully")
	return result, nil
}

// TransitionProblem меняет статус обращения
func (s *problemService) TransitionProblem(ctx context.Context, id uuid.UUID, req lifecycle.Request) (*models.ProblemRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "problem",
		"method":     "TransitionProblem",
		"problem_id": id,
		"target":     req.Target,
	})
	log.Info("Attempting to transition problem")

	if req.Department != "" {
		name, err := s.resolveDepartment(req.Department)
		if err != nil {
			log.WithError(err).Warn("Unknown department")
			return nil, fmt.Errorf("service: could not transition problem: %w", err)
		}
		req.Department = name
	}

	var previous models.Status
	record, err := s.store.Apply(ctx, id, func(r models.ProblemRecord) (models.ProblemRecord, error) {
		previous = r.Status
		return s.machine.Transition(r, req)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to transition problem")
		return nil, fmt.Errorf("service: could not transition problem: %w", err)
	}

	log.WithField("from", previous).Info("Problem transitioned successfully")
	s.publish(ctx, models.NewProblemEvent(models.EventTransitioned, record, previous))
	return record, nil
}

// RetriageProblem меняет приоритет
func (s *problemService) RetriageProblem(ctx context.Context, id uuid.UUID, priority models.Priority) (*models.ProblemRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "problem",
		"method":     "RetriageProblem",
		"problem_id": id,
		"priority":   priority,
	})
	log.Info("Attempting to re-triage problem")

	record, err := s.store.Apply(ctx, id, func(r models.ProblemRecord) (models.ProblemRecord, error) {
		return s.machine.Retriage(r, priority)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to re-triage problem")
		return nil, fmt.Errorf("service: could not re-triage problem: %w", err)
	}

	log.Info("Problem re-triaged successfully")
	s.publish(ctx, models.NewProblemEvent(models.EventRetriaged, record, record.Status))
	return record, nil
}

// UpdateProblem меняет одно изменяемое поле
func (s *problemService) UpdateProblem(ctx context.Context, id uuid.UUID, m models.Mutation) (*models.ProblemRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "problem",
		"method":     "UpdateProblem",
		"problem_id": id,
		"field":      m.Field,
	})
	log.Info("Attempting to update problem")

	if m.Field == models.FieldAssignedDepartment && strings.TrimSpace(m.Value) != "" {
		name, err := s.resolveDepartment(m.Value)
		if err != nil {
			log.WithError(err).Warn("Unknown department")
			return nil, fmt.Errorf("service: could not update problem: %w", err)
		}
		m.Value = name
	}

	record, err := s.store.Update(ctx, id, m)
	if err != nil {
		log.WithError(err).Warn("Failed to update problem")
		return nil, fmt.Errorf("service: could not update problem: %w", err)
	}

	log.Info("Problem updated successfully")
	event := models.NewProblemEvent(models.EventUpdated, record, record.Status)
	event.Field = m.Field
	s.publish(ctx, event)
	return record, nil
}

// RecordEngagement учитывает просмотр, поддержку или репост
func (s *problemService) RecordEngagement(ctx context.Context, id uuid.UUID, field models.Field) (*models.ProblemRecord, error) {
	var (
		record *models.ProblemRecord
		err    error
	)
	switch field {
	case models.FieldViews:
		record, err = s.store.Apply(ctx, id, func(r models.ProblemRecord) (models.ProblemRecord, error) {
			r.Engagement.Views++
			return r, nil
		})
	case models.FieldSupports, models.FieldShares:
		record, err = s.store.Update(ctx, id, models.Mutation{Field: field, Count: 1})
	default:
		err = fmt.Errorf("%w: %q is not an engagement counter", models.ErrValidation, field)
	}
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "problem",
			"method":     "RecordEngagement",
			"problem_id": id,
			"field":      field,
		}).WithError(err).Warn("Failed to record engagement")
		return nil, fmt.Errorf("service: could not record engagement: %w", err)
	}
	return record, nil
}

// AutoTriage переоценивает приоритет и переводит обращение в ai-processed одним изменением
func (s *problemService) AutoTriage(ctx context.Context, id uuid.UUID) (*models.ProblemRecord, *triage.Prediction, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "problem",
		"method":     "AutoTriage",
		"problem_id": id,
	})
	log.Info("Running automatic triage")

	var (
		prediction triage.Prediction
		previous   models.Status
	)
	record, err := s.store.Apply(ctx, id, func(r models.ProblemRecord) (models.ProblemRecord, error) {
		previous = r.Status
		next, p, err := s.classifier.Process(s.machine, r)
		prediction = p
		return next, err
	})
	if err != nil {
		log.WithError(err).Warn("Failed to triage problem")
		return nil, nil, fmt.Errorf("service: could not triage problem: %w", err)
	}

	log.WithFields(logrus.Fields{
		"priority":   prediction.Priority,
		"confidence": prediction.Confidence,
	}).Info("Problem triaged successfully")
	s.publish(ctx, models.NewProblemEvent(models.EventTransitioned, record, previous))
	return record, &prediction, nil
}

// GetMetrics возвращает сводку; кеш адресуется эпохой и версией хранилища
func (s *problemService) GetMetrics(ctx context.Context) (*metrics.Metrics, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "problem",
		"method":  "GetMetrics",
	})

	if s.cache != nil {
		cached, err := s.cache.GetMetricsFromCache(ctx, s.metricsKey(s.store.Version()))
		if err != nil {
			log.WithError(err).Warn("Failed to read metrics from cache")
		} else if cached != nil {
			log.Debug("Metrics served from cache")
			return cached, nil
		}
	}

	records, version := s.store.Snapshot()
	summary := metrics.Summarize(records)

	if s.cache != nil {
		if err := s.cache.SetMetricsCache(ctx, s.metricsKey(version), &summary, s.cfg.MetricsCacheTTL); err != nil {
			log.WithError(err).Warn("Failed to write metrics to cache")
		}
	}
	return &summary, nil
}

// UploadPhoto проверяет содержимое и сохраняет фото
func (s *problemService) UploadPhoto(ctx context.Context, filename string, data []byte) (*models.Photo, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "problem",
		"method":   "UploadPhoto",
		"filename": filename,
		"size":     len(data),
	})
	log.Info("Attempting to upload photo")

	if len(data) == 0 {
		return nil, fmt.Errorf("service: could not upload photo: %w: empty file", models.ErrValidation)
	}
	if int64(len(data)) > s.cfg.MaxPhotoBytes {
		return nil, fmt.Errorf("service: could not upload photo: %w: file exceeds %d bytes", models.ErrValidation, s.cfg.MaxPhotoBytes)
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		log.WithField("content_type", mt.String()).Warn("Rejected non-image upload")
		return nil, fmt.Errorf("service: could not upload photo: %w: unsupported content type %q", models.ErrValidation, mt.String())
	}
	if s.photos == nil {
		return nil, fmt.Errorf("service: could not upload photo: %w: photo storage is not configured", models.ErrCollaborator)
	}

	id := uuid.New()
	photo := &models.Photo{
		ID:          id,
		Filename:    filename,
		ContentType: mt.String(),
		Size:        len(data),
		URL:         fmt.Sprintf("%s/api/v1/photos/%s", s.cfg.PublicBaseURL, id),
		Data:        data,
	}
	if err := s.photos.SavePhoto(ctx, photo); err != nil {
		log.WithError(err).Error("Failed to save photo in repository")
		return nil, fmt.Errorf("service: could not upload photo: %w: %v", models.ErrCollaborator, err)
	}

	log.WithField("photo_id", photo.ID).Info("Photo uploaded successfully")
	return photo, nil
}

// GetPhoto возвращает фото с содержимым
func (s *problemService) GetPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	if s.photos == nil {
		return nil, fmt.Errorf("service: not get photo: %w: %s", models.ErrNotFound, id)
	}
	photo, err := s.photos.GetPhoto(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("service: not get photo: %w", err)
		}
		s.logger.WithFields(logrus.Fields{
			"service":  "problem",
			"method":   "GetPhoto",
			"photo_id": id,
		}).WithError(err).Error("Failed to get photo from repository")
		return nil, fmt.Errorf("service: not get photo: %w: %v", models.ErrCollaborator, err)
	}
	return photo, nil
}

func (s *problemService) ListDepartments() []departments.Department {
	return s.directory.List()
}

func (s *problemService) LookupDepartment(name string) (departments.Department, bool) {
	return s.directory.Lookup(name)
}

// resolveDepartment возвращает имя из справочника; без справочника имя принимается как есть
func (s *problemService) resolveDepartment(name string) (string, error) {
	if s.directory == nil {
		return name, nil
	}
	dep, ok := s.directory.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: unknown department %q", models.ErrValidation, strings.TrimSpace(name))
	}
	return dep.Name, nil
}

func (s *problemService) metricsKey(version uint64) string {
	return fmt.Sprintf("metrics:%s:%d", s.store.Epoch(), version)
}

// publish отправляет событие после фиксации изменения; ошибки только логируются
func (s *problemService) publish(ctx context.Context, event models.ProblemEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "problem",
			"event_type": event.Type,
			"problem_id": event.ProblemID,
		}).WithError(err).Error("Failed to publish problem event")
	}
}
