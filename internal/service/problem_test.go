package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/civic_tracker/internal/config"
	"github.com/shenikar/civic_tracker/internal/departments"
	"github.com/shenikar/civic_tracker/internal/lifecycle"
	"github.com/shenikar/civic_tracker/internal/metrics"
	"github.com/shenikar/civic_tracker/internal/models"
	"github.com/shenikar/civic_tracker/internal/query"
	"github.com/shenikar/civic_tracker/internal/service/mocks"
	"github.com/shenikar/civic_tracker/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

const testDepartments = `
departments:
  - name: Roads Dept
    contact: Meena Gupta
    categories: [Infrastructure]
`

// pngHeader - минимальная сигнатура PNG, по которой определяется тип содержимого
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type testDeps struct {
	photos *mocks.MockPhotoRepository
	cache  *mocks.MockMetricsCache
	events *mocks.MockEventPublisher
	store  *store.Store
}

// newTestProblemService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestProblemService(t *testing.T, cfg *config.Config) (*problemService, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		photos: mocks.NewMockPhotoRepository(ctrl),
		cache:  mocks.NewMockMetricsCache(ctrl),
		events: mocks.NewMockEventPublisher(ctrl),
		store:  store.New(store.WithClock(func() time.Time { return testNow })),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	if cfg == nil {
		cfg = &config.Config{}
	}
	if cfg.MaxPhotoBytes == 0 {
		cfg.MaxPhotoBytes = 1 << 20
	}
	if cfg.MetricsCacheTTL == 0 {
		cfg.MetricsCacheTTL = time.Minute
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:8080"
	}

	directory, err := departments.Parse([]byte(testDepartments))
	require.NoError(t, err)

	svc := NewProblemService(Deps{
		Store:     deps.store,
		Machine:   lifecycle.NewMachine(func() time.Time { return testNow }),
		Directory: directory,
		Photos:    deps.photos,
		Cache:     deps.cache,
		Events:    deps.events,
	}, logger, cfg)
	return svc.(*problemService), deps
}

func potholeSubmission() models.Submission {
	return models.Submission{
		Title:       "Large pothole",
		Description: "Pipe burst under the road",
		Category:    "Infrastructure",
		Severity:    3,
		Location:    models.Location{Latitude: 28.6139, Longitude: 77.209, Address: "Connaught Place, Delhi"},
		ReportedBy:  "citizen-1",
	}
}

// seedProblem создает обращение в обход сервиса и доводит его до нужного статуса
func seedProblem(t *testing.T, st *store.Store, path ...lifecycle.Request) *models.ProblemRecord {
	t.Helper()
	record, err := st.Create(context.Background(), potholeSubmission())
	require.NoError(t, err)
	m := lifecycle.NewMachine(func() time.Time { return testNow })
	for _, req := range path {
		record, err = st.Apply(context.Background(), record.ID, func(r models.ProblemRecord) (models.ProblemRecord, error) {
			return m.Transition(r, req)
		})
		require.NoError(t, err)
	}
	return record
}

var toAssigned = []lifecycle.Request{
	{Target: models.StatusAIProcessed},
	{Target: models.StatusAssigned, Department: "Roads Dept"},
}

func TestSubmitProblem_Success(t *testing.T) {
	// Подготовка
	svc, deps := newTestProblemService(t, nil)
	ctx := context.Background()

	// Ожидания
	deps.events.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.ProblemEvent) error {
			assert.Equal(t, models.EventCreated, e.Type)
			assert.Equal(t, models.StatusReported, e.Status)
			assert.Equal(t, "citizen-1", e.Actor)
			return nil
		}).
		Times(1)

	// Действие
	record, err := svc.SubmitProblem(ctx, potholeSubmission())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusReported, record.Status)
	assert.Equal(t, models.PriorityMedium, record.Priority)
	assert.Equal(t, "RPT-2024-001", record.Reference)
	assert.Equal(t, 1, deps.store.Len())
}

func TestSubmitProblem_ValidationError(t *testing.T) {
	// Подготовка
	svc, deps := newTestProblemService(t, nil)
	sub := potholeSubmission()
	sub.Title = "   "

	// Ожидания
	deps.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	record, err := svc.SubmitProblem(context.Background(), sub)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Zero(t, deps.store.Len())
}

func TestSubmitProblem_AutoTriage(t *testing.T) {
	// Подготовка
	svc, deps := newTestProblemService(t, &config.Config{AutoTriage: true})

	// Ожидания
	gomock.InOrder(
		deps.events.EXPECT().Publish(gomock.Any(), eventOfType(models.EventCreated)).Return(nil),
		deps.events.EXPECT().Publish(gomock.Any(), eventOfType(models.EventTransitioned)).Return(nil),
	)

	// Действие
	record, err := svc.SubmitProblem(context.Background(), potholeSubmission())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusAIProcessed, record.Status)
	// "burst" поднимает medium до high
	assert.Equal(t, models.PriorityHigh, record.Priority)
	require.Len(t, record.Timeline, 2)
	assert.Equal(t, "Automatically categorized as Infrastructure - High Priority", record.Timeline[1].Description)
}

func TestSubmitProblem_PublishFailureIsIgnored(t *testing.T) {
	svc, deps := newTestProblemService(t, nil)

	deps.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	record, err := svc.SubmitProblem(context.Background(), potholeSubmission())

	require.NoError(t, err)
	assert.NotNil(t, record)
}

func TestGetProblem_NotFound(t *testing.T) {
	svc, _ := newTestProblemService(t, nil)

	record, err := svc.GetProblem(context.Background(), uuid.New())

	assert.Nil(t, record)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListProblems(t *testing.T) {
	// Подготовка
	svc, deps := newTestProblemService(t, nil)
	seedProblem(t, deps.store)
	assigned := seedProblem(t, deps.store, toAssigned...)

	// Действие
	page, err := svc.ListProblems(context.Background(), query.Criteria{Status: "assigned"}, 1, 10)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, assigned.ID, page.Items[0].ID)
}

func TestTransitionProblem_Success(t *testing.T) {
	// Подготовка
	svc, deps := newTestProblemService(t, nil)
	record := seedProblem(t, deps.store, lifecycle.Request{Target: models.StatusAIProcessed})

	// Ожидания
	deps.events.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.ProblemEvent) error {
			assert.Equal(t, models.EventTransitioned, e.Type)
			assert.Equal(t, models.StatusAIProcessed, e.PreviousStatus)
			assert.Equal(t, models.StatusAssigned, e.Status)
			assert.Equal(t, "Roads Dept", e.Department)
			assert.Equal(t, "admin", e.Actor)
			return nil
		})

	// Действие
	updated, err := svc.TransitionProblem(context.Background(), record.ID, lifecycle.Request{
		Target:     models.StatusAssigned,
		Actor:      "admin",
		Department: "roads dept",
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, updated.Status)
	// имя берется из справочника
	assert.Equal(t, "Roads Dept", updated.AssignedDepartment)
	assert.Equal(t, "Assigned to Roads Dept", updated.Timeline[len(updated.Timeline)-1].Description)
}

func TestTransitionProblem_UnknownDepartment(t *testing.T) {
	svc, deps := newTestProblemService(t, nil)
	record := seedProblem(t, deps.store, lifecycle.Request{Target: models.StatusAIProcessed})

	deps.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.TransitionProblem(context.Background(), record.ID, lifecycle.Request{
		Target:     models.StatusAssigned,
		Department: "Fire Brigade",
	})

	assert.ErrorIs(t, err, models.ErrValidation)
	current, _ := deps.store.Get(record.ID)
	assert.Equal(t, models.StatusAIProcessed, current.Status)
}

func TestTransitionProblem_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    []lifecycle.Request
		req     lifecycle.Request
		wantErr error
	}{
		{
			name:    "skipping stages",
			req:     lifecycle.Request{Target: models.StatusResolved},
			wantErr: models.ErrIllegalTransition,
		},
		{
			name:    "assignment without department",
			path:    []lifecycle.Request{{Target: models.StatusAIProcessed}},
			req:     lifecycle.Request{Target: models.StatusAssigned},
			wantErr: models.ErrMissingAssignment,
		},
		{
			name:    "unknown status",
			req:     lifecycle.Request{Target: "closed"},
			wantErr: models.ErrValidation,
		},
		{
			name:    "reassignment to the same department",
			path:    toAssigned,
			req:     lifecycle.Request{Target: models.StatusAssigned, Department: "roads dept"},
			wantErr: models.ErrInvalidMutation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestProblemService(t, nil)
			record := seedProblem(t, deps.store, tt.path...)
			version := deps.store.Version()

			_, err := svc.TransitionProblem(context.Background(), record.ID, tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, version, deps.store.Version())
		})
	}
}

func TestTransitionProblem_NotFound(t *testing.T) {
	svc, _ := newTestProblemService(t, nil)

	_, err := svc.TransitionProblem(context.Background(), uuid.New(), lifecycle.Request{Target: models.StatusAIProcessed})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRetriageProblem(t *testing.T) {
	// Подготовка
	svc, deps := newTestProblemService(t, nil)
	record := seedProblem(t, deps.store, toAssigned...)

	// Ожидания
	deps.events.EXPECT().Publish(gomock.Any(), eventOfType(models.EventRetriaged)).Return(nil)

	// Действие
	updated, err := svc.RetriageProblem(context.Background(), record.ID, models.PriorityUrgent)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.PriorityUrgent, updated.Priority)
	assert.Equal(t, record.Timeline, updated.Timeline)
}

func TestRetriageProblem_Resolved(t *testing.T) {
	svc, deps := newTestProblemService(t, nil)
	path := append(append([]lifecycle.Request{}, toAssigned...),
		lifecycle.Request{Target: models.StatusInProgress},
		lifecycle.Request{Target: models.StatusResolved},
	)
	record := seedProblem(t, deps.store, path...)

	_, err := svc.RetriageProblem(context.Background(), record.ID, models.PriorityLow)

	assert.ErrorIs(t, err, models.ErrInvalidMutation)
}

func TestUpdateProblem_Department(t *testing.T) {
	// Подготовка
	svc, deps := newTestProblemService(t, nil)
	record := seedProblem(t, deps.store)

	// Действие
	_, err := svc.UpdateProblem(context.Background(), record.ID, models.Mutation{
		Field: models.FieldAssignedDepartment,
		Value: "Roads Dept",
	})

	// Проверки
	assert.ErrorIs(t, err, models.ErrInvalidMutation)

	_, err = svc.UpdateProblem(context.Background(), record.ID, models.Mutation{Field: models.FieldPriority, Value: "urgent"})
	assert.ErrorIs(t, err, models.ErrInvalidMutation)

	_, err = svc.UpdateProblem(context.Background(), record.ID, models.Mutation{Field: "colour"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdateProblem_Views(t *testing.T) {
	svc, deps := newTestProblemService(t, nil)
	record := seedProblem(t, deps.store)

	deps.events.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.ProblemEvent) error {
			assert.Equal(t, models.EventUpdated, e.Type)
			assert.Equal(t, models.FieldViews, e.Field)
			return nil
		})

	updated, err := svc.UpdateProblem(context.Background(), record.ID, models.Mutation{Field: models.FieldViews, Count: 42})

	require.NoError(t, err)
	assert.Equal(t, 42, updated.Engagement.Views)
}

func TestRecordEngagement(t *testing.T) {
	// Подготовка
	svc, deps := newTestProblemService(t, nil)
	record := seedProblem(t, deps.store)
	ctx := context.Background()

	// Действие
	_, err := svc.RecordEngagement(ctx, record.ID, models.FieldViews)
	require.NoError(t, err)
	_, err = svc.RecordEngagement(ctx, record.ID, models.FieldSupports)
	require.NoError(t, err)
	_, err = svc.RecordEngagement(ctx, record.ID, models.FieldSupports)
	require.NoError(t, err)
	updated, err := svc.RecordEngagement(ctx, record.ID, models.FieldShares)
	require.NoError(t, err)

	// Проверки
	assert.Equal(t, models.Engagement{Views: 1, Supports: 2, Shares: 1}, updated.Engagement)

	_, err = svc.RecordEngagement(ctx, record.ID, models.FieldTitle)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAutoTriage(t *testing.T) {
	// Подготовка
	svc, deps := newTestProblemService(t, nil)
	record := seedProblem(t, deps.store)

	// Ожидания
	deps.events.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.ProblemEvent) error {
			assert.Equal(t, models.StatusReported, e.PreviousStatus)
			assert.Equal(t, models.StatusAIProcessed, e.Status)
			return nil
		})

	// Действие
	updated, prediction, err := svc.AutoTriage(context.Background(), record.ID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, prediction)
	assert.Equal(t, models.PriorityHigh, prediction.Priority)
	assert.Equal(t, []string{"burst"}, prediction.MatchedKeywords)
	assert.Equal(t, models.StatusAIProcessed, updated.Status)
	assert.Equal(t, models.PriorityHigh, updated.Priority)

	// повторная обработка запрещена
	_, _, err = svc.AutoTriage(context.Background(), record.ID)
	assert.ErrorIs(t, err, models.ErrIllegalTransition)
}

func TestGetMetrics_CacheMiss(t *testing.T) {
	// Подготовка
	svc, deps := newTestProblemService(t, nil)
	seedProblem(t, deps.store)
	key := fmt.Sprintf("metrics:%s:%d", deps.store.Epoch(), deps.store.Version())

	// Ожидания
	deps.cache.EXPECT().GetMetricsFromCache(gomock.Any(), key).Return(nil, nil)
	deps.cache.EXPECT().
		SetMetricsCache(gomock.Any(), key, gomock.Any(), time.Minute).
		DoAndReturn(func(_ context.Context, _ string, m *metrics.Metrics, _ time.Duration) error {
			assert.Equal(t, 1, m.Total)
			return nil
		})

	// Действие
	m, err := svc.GetMetrics(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, m.Total)
	assert.Equal(t, 1, m.ByStatus[models.StatusReported])
}

func TestGetMetrics_CacheHit(t *testing.T) {
	svc, deps := newTestProblemService(t, nil)
	cached := &metrics.Metrics{Total: 99}

	deps.cache.EXPECT().GetMetricsFromCache(gomock.Any(), gomock.Any()).Return(cached, nil)
	deps.cache.EXPECT().SetMetricsCache(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	m, err := svc.GetMetrics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, m)
}

func TestGetMetrics_CacheErrorsAreIgnored(t *testing.T) {
	svc, deps := newTestProblemService(t, nil)

	deps.cache.EXPECT().GetMetricsFromCache(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	deps.cache.EXPECT().SetMetricsCache(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	m, err := svc.GetMetrics(context.Background())

	require.NoError(t, err)
	assert.Zero(t, m.Total)
	assert.Equal(t, 0.0, m.ResolutionRate)
}

func TestUploadPhoto_Success(t *testing.T) {
	// Подготовка
	svc, deps := newTestProblemService(t, nil)

	// Ожидания
	deps.photos.EXPECT().
		SavePhoto(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Photo) error {
			assert.Equal(t, "image/png", p.ContentType)
			assert.Equal(t, len(pngHeader), p.Size)
			p.CreatedAt = testNow
			return nil
		})

	// Действие
	photo, err := svc.UploadPhoto(context.Background(), "pothole.png", pngHeader)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v1/photos/"+photo.ID.String(), photo.URL)
	assert.Equal(t, "pothole.png", photo.Filename)
}

func TestUploadPhoto_Rejected(t *testing.T) {
	svc, deps := newTestProblemService(t, &config.Config{MaxPhotoBytes: 16})

	deps.photos.EXPECT().SavePhoto(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UploadPhoto(context.Background(), "empty.png", nil)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.UploadPhoto(context.Background(), "big.png", pngHeader)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.UploadPhoto(context.Background(), "notes.txt", []byte("hello"))
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUploadPhoto_StorageFailure(t *testing.T) {
	svc, deps := newTestProblemService(t, nil)

	deps.photos.EXPECT().SavePhoto(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := svc.UploadPhoto(context.Background(), "pothole.png", pngHeader)

	assert.ErrorIs(t, err, models.ErrCollaborator)
}

func TestGetPhoto(t *testing.T) {
	svc, deps := newTestProblemService(t, nil)
	missing, broken := uuid.New(), uuid.New()

	deps.photos.EXPECT().GetPhoto(gomock.Any(), missing).Return(nil, fmt.Errorf("%w: photo", models.ErrNotFound))
	deps.photos.EXPECT().GetPhoto(gomock.Any(), broken).Return(nil, errors.New("timeout"))

	_, err := svc.GetPhoto(context.Background(), missing)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.GetPhoto(context.Background(), broken)
	assert.ErrorIs(t, err, models.ErrCollaborator)
}

func TestDepartments(t *testing.T) {
	svc, _ := newTestProblemService(t, nil)

	require.Len(t, svc.ListDepartments(), 1)
	dep, ok := svc.LookupDepartment("ROADS DEPT")
	require.True(t, ok)
	assert.Equal(t, "Meena Gupta", dep.Contact)
}

func TestFanoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockEventPublisher(ctrl)
	second := mocks.NewMockEventPublisher(ctrl)
	event := models.ProblemEvent{Type: models.EventCreated}

	first.EXPECT().Publish(gomock.Any(), event).Return(errors.New("first failed"))
	second.EXPECT().Publish(gomock.Any(), event).Return(nil)

	err := FanoutPublisher{first, second}.Publish(context.Background(), event)

	assert.ErrorContains(t, err, "first failed")
}

type eventTypeMatcher models.EventType

func (m eventTypeMatcher) Matches(x any) bool {
	e, ok := x.(models.ProblemEvent)
	return ok && e.Type == models.EventType(m)
}

func (m eventTypeMatcher) String() string {
	return "event of type " + string(m)
}

func eventOfType(t models.EventType) gomock.Matcher {
	return eventTypeMatcher(t)
}
