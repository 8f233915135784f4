package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/civic_tracker/internal/models"
)

type PhotoRepository struct {
	db *pgxpool.Pool
}

func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// SavePhoto сохраняет фото и заполняет CreatedAt
func (r *PhotoRepository) SavePhoto(ctx context.Context, photo *models.Photo) error {
	query, args, err := psql.Insert("photos").
		Columns("id", "filename", "content_type", "size", "data").
		Values(photo.ID, photo.Filename, photo.ContentType, photo.Size, photo.Data).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build photo insert: %w", err)
	}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&photo.CreatedAt); err != nil {
		return fmt.Errorf("failed to save photo: %w", err)
	}
	return nil
}

// GetPhoto возвращает фото вместе с содержимым
func (r *PhotoRepository) GetPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	query, args, err := psql.Select("id", "filename", "content_type", "size", "data", "created_at").
		From("photos").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build photo select: %w", err)
	}

	photo := &models.Photo{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&photo.ID,
		&photo.Filename,
		&photo.ContentType,
		&photo.Size,
		&photo.Data,
		&photo.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: photo %s", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return photo, nil
}
