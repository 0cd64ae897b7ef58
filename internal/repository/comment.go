package repository

import (
	"context"

	"github.com/Taichi-iskw/videominer/internal/model"
)

// CommentRepository defines operations for Comment persistence
type CommentRepository interface {
	// Save inserts or replaces a comment; its owning video is left untouched
	Save(ctx context.Context, comment *model.Comment) error

	// GetByID retrieves a comment by its ID and reports whether
	// the video owning it has comments turned off
	GetByID(ctx context.Context, id string) (comment *model.Comment, commentsDisabled bool, err error)

	// Exists reports whether a comment with the given ID is stored
	Exists(ctx context.Context, id string) (bool, error)

	// Delete deletes a comment by its ID
	Delete(ctx context.Context, id string) error

	// List retrieves one page of comments ordered by ID
	List(ctx context.Context, page PageRequest) ([]*model.Comment, error)
}
