package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/Taichi-iskw/videominer/internal/repository"
)

// mockChannelRepository is a mock implementation of ChannelRepository for testing
type mockChannelRepository struct {
	mock.Mock
}

func (m *mockChannelRepository) Save(ctx context.Context, channel *model.Channel) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *mockChannelRepository) GetByID(ctx context.Context, id string) (*model.Channel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Channel), args.Error(1)
}

func (m *mockChannelRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockChannelRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockChannelRepository) List(ctx context.Context, page repository.PageRequest) ([]*model.Channel, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]*model.Channel), args.Error(1)
}

func (m *mockChannelRepository) ListByName(ctx context.Context, name string, page repository.PageRequest) ([]*model.Channel, error) {
	args := m.Called(ctx, name, page)
	return args.Get(0).([]*model.Channel), args.Error(1)
}

func (m *mockChannelRepository) ListByNameContaining(ctx context.Context, fragment string, page repository.PageRequest) ([]*model.Channel, error) {
	args := m.Called(ctx, fragment, page)
	return args.Get(0).([]*model.Channel), args.Error(1)
}

// mockVideoRepository is a mock implementation of VideoRepository for testing
type mockVideoRepository struct {
	mock.Mock
}

func (m *mockVideoRepository) Save(ctx context.Context, video *model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *mockVideoRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockVideoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVideoRepository) List(ctx context.Context, page repository.PageRequest) ([]*model.Video, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]*model.Video), args.Error(1)
}

func (m *mockVideoRepository) ListByName(ctx context.Context, name string, page repository.PageRequest) ([]*model.Video, error) {
	args := m.Called(ctx, name, page)
	return args.Get(0).([]*model.Video), args.Error(1)
}

func (m *mockVideoRepository) ListByNameContaining(ctx context.Context, fragment string, page repository.PageRequest) ([]*model.Video, error) {
	args := m.Called(ctx, fragment, page)
	return args.Get(0).([]*model.Video), args.Error(1)
}

// mockCommentRepository is a mock implementation of CommentRepository for testing
type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id string) (*model.Comment, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Comment), args.Bool(1), args.Error(2)
}

func (m *mockCommentRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCommentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCommentRepository) List(ctx context.Context, page repository.PageRequest) ([]*model.Comment, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]*model.Comment), args.Error(1)
}

// mockCaptionRepository is a mock implementation of CaptionRepository for testing
type mockCaptionRepository struct {
	mock.Mock
}

func (m *mockCaptionRepository) Save(ctx context.Context, caption *model.Caption) error {
	args := m.Called(ctx, caption)
	return args.Error(0)
}

func (m *mockCaptionRepository) GetByID(ctx context.Context, id string) (*model.Caption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Caption), args.Error(1)
}

func (m *mockCaptionRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCaptionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCaptionRepository) List(ctx context.Context, page repository.PageRequest) ([]*model.Caption, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]*model.Caption), args.Error(1)
}
