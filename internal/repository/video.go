package repository

import (
	"context"

	"github.com/Taichi-iskw/videominer/internal/model"
)

// VideoRepository defines operations for Video persistence.
// Videos are returned with their comments and captions.
type VideoRepository interface {
	// Save inserts or replaces a video together with its comments and captions.
	// The owning channel of an existing video is left untouched.
	Save(ctx context.Context, video *model.Video) error

	// GetByID retrieves a video by its ID
	GetByID(ctx context.Context, id string) (*model.Video, error)

	// Exists reports whether a video with the given ID is stored
	Exists(ctx context.Context, id string) (bool, error)

	// Delete deletes a video by its ID; owned comments and captions go with it
	Delete(ctx context.Context, id string) error

	// List retrieves one page of videos
	List(ctx context.Context, page PageRequest) ([]*model.Video, error)

	// ListByName retrieves one page of videos whose name equals name
	ListByName(ctx context.Context, name string, page PageRequest) ([]*model.Video, error)

	// ListByNameContaining retrieves one page of videos whose name contains fragment
	ListByNameContaining(ctx context.Context, fragment string, page PageRequest) ([]*model.Video, error)
}
