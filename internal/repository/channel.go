package repository

import (
	"context"

	"github.com/Taichi-iskw/videominer/internal/model"
)

// ChannelRepository defines operations for Channel persistence.
// Channels are returned with their full video trees.
type ChannelRepository interface {
	// Save inserts or replaces a channel together with its videos
	Save(ctx context.Context, channel *model.Channel) error

	// GetByID retrieves a channel by its ID
	GetByID(ctx context.Context, id string) (*model.Channel, error)

	// Exists reports whether a channel with the given ID is stored
	Exists(ctx context.Context, id string) (bool, error)

	// Delete deletes a channel by its ID; owned videos go with it
	Delete(ctx context.Context, id string) error

	// List retrieves one page of channels
	List(ctx context.Context, page PageRequest) ([]*model.Channel, error)

	// ListByName retrieves one page of channels whose name equals name
	ListByName(ctx context.Context, name string, page PageRequest) ([]*model.Channel, error)

	// ListByNameContaining retrieves one page of channels whose name contains fragment
	ListByNameContaining(ctx context.Context, fragment string, page PageRequest) ([]*model.Channel, error)
}
