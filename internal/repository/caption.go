package repository

import (
	"context"

	"github.com/Taichi-iskw/videominer/internal/model"
)

// CaptionRepository defines operations for Caption persistence
type CaptionRepository interface {
	// Save inserts or replaces a caption; its owning video is left untouched
	Save(ctx context.Context, caption *model.Caption) error

	// GetByID retrieves a caption by its ID
	GetByID(ctx context.Context, id string) (*model.Caption, error)

	// Exists reports whether a caption with the given ID is stored
	Exists(ctx context.Context, id string) (bool, error)

	// Delete deletes a caption by its ID
	Delete(ctx context.Context, id string) error

	// List retrieves one page of captions ordered by ID
	List(ctx context.Context, page PageRequest) ([]*model.Caption, error)
}
