package service

import (
	"context"

	"github.com/Taichi-iskw/videominer/internal/errors"
	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/Taichi-iskw/videominer/internal/repository"
)

// CommentService is interface for comment operations
type CommentService interface {
	List(ctx context.Context, params ListParams) ([]*model.Comment, error)
	Get(ctx context.Context, id string) (*model.Comment, error)
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	Update(ctx context.Context, id string, comment *model.Comment) error
	Delete(ctx context.Context, id string) error
}

// commentService implements CommentService
type commentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
	}
}

// List returns one page of comments; only Page and Size are honoured
func (s *commentService) List(ctx context.Context, params ListParams) ([]*model.Comment, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.commentRepo.List(ctx, repository.PageRequest{Page: params.Page, Size: params.Size})
}

// Get returns the comment stored under id, or ErrCommentForbidden
// when the video owning it has comments turned off
func (s *commentService) Get(ctx context.Context, id string) (*model.Comment, error) {
	comment, commentsDisabled, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if commentsDisabled {
		return nil, errors.ErrCommentForbidden
	}
	return comment, nil
}

// Create stores comment as given; an existing comment with the same id is overwritten
func (s *commentService) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if err := requireID(comment.ID); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Save(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update replaces the comment stored under id with the whitelisted fields of comment
func (s *commentService) Update(ctx context.Context, id string, comment *model.Comment) error {
	exists, err := s.commentRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.ErrCommentNotFound
	}

	return s.commentRepo.Save(ctx, comment.Replacement(id))
}

// Delete removes the comment stored under id
func (s *commentService) Delete(ctx context.Context, id string) error {
	exists, err := s.commentRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.ErrCommentNotFound
	}

	return s.commentRepo.Delete(ctx, id)
}
