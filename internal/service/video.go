package service

import (
	"context"

	"github.com/Taichi-iskw/videominer/internal/errors"
	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/Taichi-iskw/videominer/internal/repository"
)

// VideoService is interface for video operations
type VideoService interface {
	List(ctx context.Context, params ListParams) ([]*model.Video, error)
	Get(ctx context.Context, id string) (*model.Video, error)
	Create(ctx context.Context, video *model.Video) (*model.Video, error)
	Update(ctx context.Context, id string, video *model.Video) error
	Delete(ctx context.Context, id string) error
	Comments(ctx context.Context, id string) ([]model.Comment, error)
	Captions(ctx context.Context, id string) ([]model.Caption, error)
}

// videoService implements VideoService
type videoService struct {
	videoRepo repository.VideoRepository
}

// NewVideoService creates a new VideoService
func NewVideoService(videoRepo repository.VideoRepository) VideoService {
	return &videoService{
		videoRepo: videoRepo,
	}
}

// List returns one page of videos. name wins over containing; an empty page is an error.
func (s *videoService) List(ctx context.Context, params ListParams) ([]*model.Video, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var (
		videos []*model.Video
		err    error
	)
	page := params.pageRequest()
	switch {
	case params.Name != "":
		videos, err = s.videoRepo.ListByName(ctx, params.Name, page)
	case params.Containing != "":
		videos, err = s.videoRepo.ListByNameContaining(ctx, params.Containing, page)
	default:
		videos, err = s.videoRepo.List(ctx, page)
	}
	if err != nil {
		return nil, err
	}

	if len(videos) == 0 {
		return nil, errors.ErrVideoNotFound
	}
	return videos, nil
}

// Get returns the video stored under id
func (s *videoService) Get(ctx context.Context, id string) (*model.Video, error) {
	return s.videoRepo.GetByID(ctx, id)
}

// Create stores video as given; an existing video with the same id is overwritten
func (s *videoService) Create(ctx context.Context, video *model.Video) (*model.Video, error) {
	if err := requireID(video.ID); err != nil {
		return nil, err
	}

	video.Normalize()
	if err := s.videoRepo.Save(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// Update replaces the video stored under id with the whitelisted fields of video
func (s *videoService) Update(ctx context.Context, id string, video *model.Video) error {
	exists, err := s.videoRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.ErrVideoNotFound
	}

	return s.videoRepo.Save(ctx, video.Replacement(id))
}

// Delete removes the video stored under id
func (s *videoService) Delete(ctx context.Context, id string) error {
	exists, err := s.videoRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.ErrVideoNotFound
	}

	return s.videoRepo.Delete(ctx, id)
}

// Comments returns the comments owned by the video stored under id
func (s *videoService) Comments(ctx context.Context, id string) ([]model.Comment, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	video.Normalize()
	return video.Comments, nil
}

// Captions returns the captions owned by the video stored under id
func (s *videoService) Captions(ctx context.Context, id string) ([]model.Caption, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	video.Normalize()
	return video.Captions, nil
}
