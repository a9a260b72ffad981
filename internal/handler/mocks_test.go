package handlers_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"blogfeed/internal/models"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

type stubHealth struct {
	err error
}

func (s stubHealth) HealthCheck() error { return s.err }

var errDown = errors.New("database is locked")
