package service

import (
	"context"

	"github.com/Taichi-iskw/videominer/internal/errors"
	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/Taichi-iskw/videominer/internal/repository"
)

// CaptionService is interface for caption operations
type CaptionService interface {
	List(ctx context.Context, params ListParams) ([]*model.Caption, error)
	Get(ctx context.Context, id string) (*model.Caption, error)
	Create(ctx context.Context, caption *model.Caption) (*model.Caption, error)
	Update(ctx context.Context, id string, caption *model.Caption) error
	Delete(ctx context.Context, id string) error
}

// captionService implements CaptionService
type captionService struct {
	captionRepo repository.CaptionRepository
}

// NewCaptionService creates a new CaptionService
func NewCaptionService(captionRepo repository.CaptionRepository) CaptionService {
	return &captionService{
		captionRepo: captionRepo,
	}
}

// List returns one page of captions; only Page and Size are honoured
func (s *captionService) List(ctx context.Context, params ListParams) ([]*model.Caption, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.captionRepo.List(ctx, repository.PageRequest{Page: params.Page, Size: params.Size})
}

// Get returns the caption stored under id
func (s *captionService) Get(ctx context.Context, id string) (*model.Caption, error) {
	return s.captionRepo.GetByID(ctx, id)
}

// Create stores caption as given; an existing caption with the same id is overwritten
func (s *captionService) Create(ctx context.Context, caption *model.Caption) (*model.Caption, error) {
	if err := requireID(caption.ID); err != nil {
		return nil, err
	}

	if err := s.captionRepo.Save(ctx, caption); err != nil {
		return nil, err
	}
	return caption, nil
}

// Update replaces the caption stored under id with the whitelisted fields of caption
func (s *captionService) Update(ctx context.Context, id string, caption *model.Caption) error {
	exists, err := s.captionRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.ErrCaptionNotFound
	}

	return s.captionRepo.Save(ctx, caption.Replacement(id))
}

// Delete removes the caption stored under id
func (s *captionService) Delete(ctx context.Context, id string) error {
	exists, err := s.captionRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.ErrCaptionNotFound
	}

	return s.captionRepo.Delete(ctx, id)
}
