package repository

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/civic_tracker/internal/models"
	"github.com/shenikar/civic_tracker/internal/store"
)

const problemsTable = "problems"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var problemColumns = []string{
	"id", "seq", "reference", "title", "description", "category", "severity",
	"priority", "status", "latitude", "longitude", "address", "reported_by",
	"reported_at", "assigned_department", "timeline", "views", "supports",
	"shares", "updated_at",
}

// mutableColumns - колонки, которые меняются после создания
var mutableColumns = []string{
	"priority", "status", "assigned_department", "timeline", "views", "supports", "shares", "updated_at",
}

var _ store.Persister = (*ProblemRepository)(nil)

type ProblemRepository struct {
	db *pgxpool.Pool
}

func NewProblemRepository(db *pgxpool.Pool) *ProblemRepository {
	return &ProblemRepository{db: db}
}

// Save сохраняет обращение целиком: вставка новой записи или обновление изменяемых полей
func (r *ProblemRepository) Save(ctx context.Context, record *models.ProblemRecord) error {
	query, args, err := buildUpsertQuery(record)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save problem %s: %w", record.ID, err)
	}
	return nil
}

// LoadAll возвращает все обращения в порядке создания
func (r *ProblemRepository) LoadAll(ctx context.Context) ([]*models.ProblemRecord, error) {
	query, args, err := psql.Select(problemColumns...).From(problemsTable).OrderBy("seq").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load problems: %w", err)
	}
	defer rows.Close()

	records := make([]*models.ProblemRecord, 0)
	for rows.Next() {
		record, err := scanProblem(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}

func buildUpsertQuery(record *models.ProblemRecord) (string, []any, error) {
	timeline, err := json.Marshal(record.Timeline)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal timeline: %w", err)
	}

	suffix := "ON CONFLICT (id) DO UPDATE SET "
	for i, c := range mutableColumns {
		if i > 0 {
			suffix += ", "
		}
		suffix += c + " = EXCLUDED." + c
	}

	query, args, err := psql.Insert(problemsTable).
		Columns(problemColumns...).
		Values(
			record.ID,
			record.Sequence,
			record.Reference,
			record.Title,
			record.Description,
			record.Category,
			record.Severity,
			string(record.Priority),
			string(record.Status),
			record.Location.Latitude,
			record.Location.Longitude,
			record.Location.Address,
			record.ReportedBy,
			record.ReportedAt,
			record.AssignedDepartment,
			timeline,
			record.Engagement.Views,
			record.Engagement.Supports,
			record.Engagement.Shares,
			record.UpdatedAt,
		).
		Suffix(suffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build upsert query: %w", err)
	}
	return query, args, nil
}

func scanProblem(row pgx.Row) (*models.ProblemRecord, error) {
	record := &models.ProblemRecord{}
	var priority, status string
	var timeline []byte
	err := row.Scan(
		&record.ID,
		&record.Sequence,
		&record.Reference,
		&record.Title,
		&record.Description,
		&record.Category,
		&record.Severity,
		&priority,
		&status,
		&record.Location.Latitude,
		&record.Location.Longitude,
		&record.Location.Address,
		&record.ReportedBy,
		&record.ReportedAt,
		&record.AssignedDepartment,
		&timeline,
		&record.Engagement.Views,
		&record.Engagement.Supports,
		&record.Engagement.Shares,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan problem row: %w", err)
	}
	record.Priority = models.Priority(priority)
	record.Status = models.Status(status)
	if err := json.Unmarshal(timeline, &record.Timeline); err != nil {
		return nil, fmt.Errorf("failed to unmarshal timeline of %s: %w", record.ID, err)
	}
	return record, nil
}
