package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/Taichi-iskw/videominer/internal/service"
)

type mockChannelService struct {
	mock.Mock
}

func (m *mockChannelService) List(ctx context.Context, params service.ListParams) ([]*model.Channel, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Channel), args.Error(1)
}

func (m *mockChannelService) Get(ctx context.Context, id string) (*model.Channel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Channel), args.Error(1)
}

func (m *mockChannelService) Create(ctx context.Context, channel *model.Channel) (*model.Channel, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Channel), args.Error(1)
}

func (m *mockChannelService) Update(ctx context.Context, id string, channel *model.Channel) error {
	return m.Called(ctx, id, channel).Error(0)
}

func (m *mockChannelService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockVideoService struct {
	mock.Mock
}

func (m *mockVideoService) List(ctx context.Context, params service.ListParams) ([]*model.Video, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}

func (m *mockVideoService) Get(ctx context.Context, id string) (*model.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *mockVideoService) Create(ctx context.Context, video *model.Video) (*model.Video, error) {
	args := m.Called(ctx, video)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *mockVideoService) Update(ctx context.Context, id string, video *model.Video) error {
	return m.Called(ctx, id, video).Error(0)
}

func (m *mockVideoService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockVideoService) Comments(ctx context.Context, id string) ([]model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *mockVideoService) Captions(ctx context.Context, id string) ([]model.Caption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Caption), args.Error(1)
}

type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) List(ctx context.Context, params service.ListParams) ([]*model.Comment, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *mockCommentService) Get(ctx context.Context, id string) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *mockCommentService) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *mockCommentService) Update(ctx context.Context, id string, comment *model.Comment) error {
	return m.Called(ctx, id, comment).Error(0)
}

func (m *mockCommentService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCaptionService struct {
	mock.Mock
}

func (m *mockCaptionService) List(ctx context.Context, params service.ListParams) ([]*model.Caption, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Caption), args.Error(1)
}

func (m *mockCaptionService) Get(ctx context.Context, id string) (*model.Caption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Caption), args.Error(1)
}

func (m *mockCaptionService) Create(ctx context.Context, caption *model.Caption) (*model.Caption, error) {
	args := m.Called(ctx, caption)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Caption), args.Error(1)
}

func (m *mockCaptionService) Update(ctx context.Context, id string, caption *model.Caption) error {
	return m.Called(ctx, id, caption).Error(0)
}

func (m *mockCaptionService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
