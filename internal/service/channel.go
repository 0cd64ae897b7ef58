package service

import (
	"context"

	"github.com/Taichi-iskw/videominer/internal/errors"
	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/Taichi-iskw/videominer/internal/repository"
)

// ChannelService is interface for channel operations
type ChannelService interface {
	List(ctx context.Context, params ListParams) ([]*model.Channel, error)
	Get(ctx context.Context, id string) (*model.Channel, error)
	Create(ctx context.Context, channel *model.Channel) (*model.Channel, error)
	Update(ctx context.Context, id string, channel *model.Channel) error
	Delete(ctx context.Context, id string) error
}

// channelService implements ChannelService
type channelService struct {
	channelRepo repository.ChannelRepository
}

// NewChannelService creates a new ChannelService
func NewChannelService(channelRepo repository.ChannelRepository) ChannelService {
	return &channelService{
		channelRepo: channelRepo,
	}
}

// List returns one page of channels. name wins over containing; an empty page is an error.
func (s *channelService) List(ctx context.Context, params ListParams) ([]*model.Channel, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var (
		channels []*model.Channel
		err      error
	)
	page := params.pageRequest()
	switch {
	case params.Name != "":
		channels, err = s.channelRepo.ListByName(ctx, params.Name, page)
	case params.Containing != "":
		channels, err = s.channelRepo.ListByNameContaining(ctx, params.Containing, page)
	default:
		channels, err = s.channelRepo.List(ctx, page)
	}
	if err != nil {
		return nil, err
	}

	if len(channels) == 0 {
		return nil, errors.ErrChannelNotFound
	}
	return channels, nil
}

// Get returns the channel stored under id
func (s *channelService) Get(ctx context.Context, id string) (*model.Channel, error) {
	return s.channelRepo.GetByID(ctx, id)
}

// Create stores channel as given; an existing channel with the same id is overwritten
func (s *channelService) Create(ctx context.Context, channel *model.Channel) (*model.Channel, error) {
	if err := requireID(channel.ID); err != nil {
		return nil, err
	}

	channel.Normalize()
	if err := s.channelRepo.Save(ctx, channel); err != nil {
		return nil, err
	}
	return channel, nil
}

// Update replaces the channel stored under id with the whitelisted fields of channel
func (s *channelService) Update(ctx context.Context, id string, channel *model.Channel) error {
	exists, err := s.channelRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.ErrChannelNotFound
	}

	return s.channelRepo.Save(ctx, channel.Replacement(id))
}

// Delete removes the channel stored under id
func (s *channelService) Delete(ctx context.Context, id string) error {
	exists, err := s.channelRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.ErrChannelNotFound
	}

	return s.channelRepo.Delete(ctx, id)
}
