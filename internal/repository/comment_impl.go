package repository

import (
	"context"
	"errors"

	apperrors "github.com/Taichi-iskw/videominer/internal/errors"
	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	upsertCommentSQL = `INSERT INTO comments (id, text, created_on, author) VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET text = EXCLUDED.text, created_on = EXCLUDED.created_on, author = EXCLUDED.author`
	selectCommentWithVideoSQL = `SELECT c.id, c.text, c.created_on, c.author, COALESCE(v.comments_disabled, FALSE)
FROM comments c LEFT JOIN videos v ON v.id = c.video_id WHERE c.id = $1`
	selectCommentSQL = "SELECT id, text, created_on, author FROM comments"
)

// commentRepository implements CommentRepository using PostgreSQL
type commentRepository struct {
	pool Pool
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(pool Pool) CommentRepository {
	return &commentRepository{
		pool: pool,
	}
}

// Save inserts or replaces a comment
func (r *commentRepository) Save(ctx context.Context, comment *model.Comment) error {
	_, err := r.pool.Exec(ctx, upsertCommentSQL, comment.ID, comment.Text, comment.CreatedOn, comment.Author)
	if err != nil {
		return handlePostgreSQLError(err, "failed to save comment")
	}
	return nil
}

// GetByID retrieves a comment by its ID along with its video's comments flag
func (r *commentRepository) GetByID(ctx context.Context, id string) (*model.Comment, bool, error) {
	row := r.pool.QueryRow(ctx, selectCommentWithVideoSQL, id)

	var comment model.Comment
	var disabled bool
	err := row.Scan(&comment.ID, &comment.Text, &comment.CreatedOn, &comment.Author, &disabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, apperrors.Wrap(err, apperrors.CodeNotFound, apperrors.ErrCommentNotFound.Message)
		}
		return nil, false, handlePostgreSQLError(err, "failed to get comment")
	}
	return &comment, disabled, nil
}

// Exists reports whether a comment with the given ID is stored
func (r *commentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, handlePostgreSQLError(err, "failed to check comment")
	}
	return exists, nil
}

// Delete deletes a comment by its ID
func (r *commentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return handlePostgreSQLError(err, "failed to delete comment")
	}
	return nil
}

// List retrieves one page of comments ordered by ID
func (r *commentRepository) List(ctx context.Context, page PageRequest) ([]*model.Comment, error) {
	rows, err := r.pool.Query(ctx, selectCommentSQL+" ORDER BY id LIMIT $1 OFFSET $2", page.Size, page.Offset())
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to list comments")
	}
	defer rows.Close()

	comments := []*model.Comment{}
	for rows.Next() {
		var comment model.Comment
		if err := rows.Scan(&comment.ID, &comment.Text, &comment.CreatedOn, &comment.Author); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan comment row")
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate comment rows")
	}
	return comments, nil
}
