package repository

import (
	"context"
	"errors"

	apperrors "github.com/Taichi-iskw/videominer/internal/errors"
	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	upsertCaptionSQL = `INSERT INTO captions (id, name, language) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, language = EXCLUDED.language`
	selectCaptionSQL = "SELECT id, name, language FROM captions"
)

// captionRepository implements CaptionRepository using PostgreSQL
type captionRepository struct {
	pool Pool
}

// NewCaptionRepository creates a new instance of CaptionRepository
func NewCaptionRepository(pool Pool) CaptionRepository {
	return &captionRepository{
		pool: pool,
	}
}

// Save inserts or replaces a caption
func (r *captionRepository) Save(ctx context.Context, caption *model.Caption) error {
	_, err := r.pool.Exec(ctx, upsertCaptionSQL, caption.ID, caption.Name, caption.Language)
	if err != nil {
		return handlePostgreSQLError(err, "failed to save caption")
	}
	return nil
}

// GetByID retrieves a caption by its ID
func (r *captionRepository) GetByID(ctx context.Context, id string) (*model.Caption, error) {
	row := r.pool.QueryRow(ctx, selectCaptionSQL+" WHERE id = $1", id)

	var caption model.Caption
	err := row.Scan(&caption.ID, &caption.Name, &caption.Language)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, apperrors.ErrCaptionNotFound.Message)
		}
		return nil, handlePostgreSQLError(err, "failed to get caption")
	}
	return &caption, nil
}

// Exists reports whether a caption with the given ID is stored
func (r *captionRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM captions WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, handlePostgreSQLError(err, "failed to check caption")
	}
	return exists, nil
}

// Delete deletes a caption by its ID
func (r *captionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM captions WHERE id = $1", id)
	if err != nil {
		return handlePostgreSQLError(err, "failed to delete caption")
	}
	return nil
}

// List retrieves one page of captions ordered by ID
func (r *captionRepository) List(ctx context.Context, page PageRequest) ([]*model.Caption, error) {
	rows, err := r.pool.Query(ctx, selectCaptionSQL+" ORDER BY id LIMIT $1 OFFSET $2", page.Size, page.Offset())
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to list captions")
	}
	defer rows.Close()

	captions := []*model.Caption{}
	for rows.Next() {
		var caption model.Caption
		if err := rows.Scan(&caption.ID, &caption.Name, &caption.Language); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan caption row")
		}
		captions = append(captions, &caption)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate caption rows")
	}
	return captions, nil
}
