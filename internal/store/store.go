// Package store - авторитетное хранилище обращений в памяти.
// Только оно создает и меняет записи; наружу отдаются копии.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/civic_tracker/internal/models"
)

// Persister сохраняет запись до того, как изменение станет видимым
type Persister interface {
	Save(ctx context.Context, record *models.ProblemRecord) error
}

// ApplyFunc получает личную копию записи и возвращает ее новое состояние
type ApplyFunc func(record models.ProblemRecord) (models.ProblemRecord, error)

type Option func(*Store)

// WithClock подменяет часы
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithPersister включает сквозную запись в постоянное хранилище
func WithPersister(p Persister) Option {
	return func(s *Store) {
		s.persister = p
	}
}

type Store struct {
	mu        sync.RWMutex
	records   map[uuid.UUID]*models.ProblemRecord
	order     []uuid.UUID
	seq       int64
	version   uint64
	epoch     string
	persister Persister
	now       func() time.Time
}

func New(opts ...Option) *Store {
	s := &Store{
		records: make(map[uuid.UUID]*models.ProblemRecord),
		epoch:   uuid.NewString(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create проверяет заявку и заводит новое обращение в статусе reported
func (s *Store) Create(ctx context.Context, sub models.Submission) (*models.ProblemRecord, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	seq := s.seq + 1
	entry := models.TimelineEntry{
		Status:      models.StatusReported,
		Timestamp:   now,
		Description: "Problem reported by citizen",
		Actor:       strings.TrimSpace(sub.ReportedBy),
	}
	if sub.PhotoURL != "" {
		entry.Description = "Problem reported by citizen with photo evidence"
		entry.Evidence = []string{sub.PhotoURL}
	}

	record := &models.ProblemRecord{
		ID:          uuid.New(),
		Sequence:    seq,
		Reference:   fmt.Sprintf("RPT-%d-%03d", now.Year(), seq),
		Title:       strings.TrimSpace(sub.Title),
		Description: strings.TrimSpace(sub.Description),
		Category:    strings.TrimSpace(sub.Category),
		Severity:    sub.Severity,
		Priority:    models.PriorityFromSeverity(sub.Severity),
		Status:      models.StatusReported,
		Location:    sub.Location,
		ReportedBy:  strings.TrimSpace(sub.ReportedBy),
		ReportedAt:  now,
		Timeline:    []models.TimelineEntry{entry},
		UpdatedAt:   now,
	}
	if _, exists := s.records[record.ID]; exists {
		return nil, fmt.Errorf("store: duplicate identifier %s", record.ID)
	}

	if err := s.persist(ctx, record); err != nil {
		return nil, err
	}

	s.seq = seq
	s.records[record.ID] = record
	s.order = append(s.order, record.ID)
	s.version++
	return record.Clone(), nil
}

// Get возвращает копию обращения
func (s *Store) Get(id uuid.UUID) (*models.ProblemRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	return record.Clone(), nil
}

// List возвращает снимок всех обращений в порядке создания
func (s *Store) List() []*models.ProblemRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.ProblemRecord, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id].Clone())
	}
	return result
}

// Snapshot возвращает снимок вместе с версией, к которой он относится
func (s *Store) Snapshot() ([]*models.ProblemRecord, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.ProblemRecord, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id].Clone())
	}
	return result, s.version
}

// Len - количество обращений
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Version увеличивается при каждом успешном изменении
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Epoch - идентификатор экземпляра хранилища; вместе с Version образует ключ кеша
func (s *Store) Epoch() string {
	return s.epoch
}

// Apply атомарно применяет fn к записи: либо изменение целиком проходит проверки,
// сохраняется и становится видимым, либо хранилище остается прежним.
func (s *Store) Apply(ctx context.Context, id uuid.UUID, fn ApplyFunc) (*models.ProblemRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	next, err := fn(*current.Clone())
	if err != nil {
		return nil, err
	}
	if err := checkImmutable(current, &next); err != nil {
		return nil, err
	}
	if err := next.CheckInvariants(); err != nil {
		return nil, err
	}
	next.UpdatedAt = s.now()

	updated := next.Clone()
	if err := s.persist(ctx, updated); err != nil {
		return nil, err
	}

	s.records[id] = updated
	s.version++
	return updated.Clone(), nil
}

// Update меняет одно изменяемое поле
func (s *Store) Update(ctx context.Context, id uuid.UUID, m models.Mutation) (*models.ProblemRecord, error) {
	return s.Apply(ctx, id, func(record models.ProblemRecord) (models.ProblemRecord, error) {
		if err := applyMutation(&record, m); err != nil {
			return record, err
		}
		return record, nil
	})
}

// Restore загружает сохраненные обращения при старте. Порядок задается Sequence.
func (s *Store) Restore(records []*models.ProblemRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if err := r.CheckInvariants(); err != nil {
			return fmt.Errorf("store: restore %s: %w", r.ID, err)
		}
		if _, exists := s.records[r.ID]; exists {
			return fmt.Errorf("store: restore: duplicate identifier %s", r.ID)
		}
		if r.Sequence <= s.seq {
			return fmt.Errorf("store: restore: sequence %d of %s is out of order", r.Sequence, r.ID)
		}
		s.records[r.ID] = r.Clone()
		s.order = append(s.order, r.ID)
		s.seq = r.Sequence
	}
	if len(records) > 0 {
		s.version++
	}
	return nil
}

func (s *Store) persist(ctx context.Context, record *models.ProblemRecord) error {
	if s.persister == nil {
		return nil
	}
	if err := s.persister.Save(ctx, record); err != nil {
		return fmt.Errorf("%w: persist problem %s: %v", models.ErrCollaborator, record.ID, err)
	}
	return nil
}

func validateSubmission(sub models.Submission) error {
	if strings.TrimSpace(sub.Title) == "" {
		return fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	if strings.TrimSpace(sub.Category) == "" {
		return fmt.Errorf("%w: category is required", models.ErrValidation)
	}
	if sub.Severity < 1 || sub.Severity > 5 {
		return fmt.Errorf("%w: severity must be between 1 and 5, got %d", models.ErrValidation, sub.Severity)
	}
	if !sub.Location.Valid() {
		return fmt.Errorf("%w: coordinates (%f, %f) are out of range", models.ErrValidation, sub.Location.Latitude, sub.Location.Longitude)
	}
	return nil
}
