package repository

import (
	"context"
	"errors"

	apperrors "github.com/Taichi-iskw/videominer/internal/errors"
	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	upsertVideoSQL = `INSERT INTO videos (id, name, description, release_time, comments_disabled) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description,
release_time = EXCLUDED.release_time, comments_disabled = EXCLUDED.comments_disabled`
	selectVideoSQL = "SELECT id, name, description, release_time, comments_disabled FROM videos"
)

// videoRepository implements VideoRepository using PostgreSQL
type videoRepository struct {
	pool Pool
}

// NewVideoRepository creates a new instance of VideoRepository
func NewVideoRepository(pool Pool) VideoRepository {
	return &videoRepository{
		pool: pool,
	}
}

// Save inserts or replaces a video together with its comments and captions
func (r *videoRepository) Save(ctx context.Context, video *model.Video) error {
	return inTx(ctx, r.pool, "failed to save video", func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, upsertVideoSQL,
			video.ID, video.Name, video.Description, video.ReleaseTime, video.CommentsDisabled)
		if err != nil {
			return handlePostgreSQLError(err, "failed to save video")
		}
		return saveVideoChildren(ctx, tx, video)
	})
}

// GetByID retrieves a video by its ID
func (r *videoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	row := r.pool.QueryRow(ctx, selectVideoSQL+" WHERE id = $1", id)

	var video model.Video
	err := row.Scan(&video.ID, &video.Name, &video.Description, &video.ReleaseTime, &video.CommentsDisabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, apperrors.ErrVideoNotFound.Message)
		}
		return nil, handlePostgreSQLError(err, "failed to get video")
	}

	if err := loadVideoChildren(ctx, r.pool, []*model.Video{&video}); err != nil {
		return nil, err
	}
	return &video, nil
}

// Exists reports whether a video with the given ID is stored
func (r *videoRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM videos WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, handlePostgreSQLError(err, "failed to check video")
	}
	return exists, nil
}

// Delete deletes a video by its ID
func (r *videoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM videos WHERE id = $1", id)
	if err != nil {
		return handlePostgreSQLError(err, "failed to delete video")
	}
	return nil
}

// List retrieves one page of videos
func (r *videoRepository) List(ctx context.Context, page PageRequest) ([]*model.Video, error) {
	return r.list(ctx, "", page)
}

// ListByName retrieves one page of videos whose name equals name
func (r *videoRepository) ListByName(ctx context.Context, name string, page PageRequest) ([]*model.Video, error) {
	return r.list(ctx, "WHERE name = $1", page, name)
}

// ListByNameContaining retrieves one page of videos whose name contains fragment
func (r *videoRepository) ListByNameContaining(ctx context.Context, fragment string, page PageRequest) ([]*model.Video, error) {
	return r.list(ctx, "WHERE strpos(name, $1) > 0", page, fragment)
}

func (r *videoRepository) list(ctx context.Context, where string, page PageRequest, args ...any) ([]*model.Video, error) {
	orderBy, err := videoSortColumns.orderBy(page.Sort)
	if err != nil {
		return nil, err
	}

	sql := pagedQuery(selectVideoSQL, where, orderBy, len(args))
	rows, err := r.pool.Query(ctx, sql, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to list videos")
	}
	defer rows.Close()

	videos := []*model.Video{}
	for rows.Next() {
		var video model.Video
		err := rows.Scan(&video.ID, &video.Name, &video.Description, &video.ReleaseTime, &video.CommentsDisabled)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan video row")
		}
		videos = append(videos, &video)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate video rows")
	}

	if err := loadVideoChildren(ctx, r.pool, videos); err != nil {
		return nil, err
	}
	return videos, nil
}
