// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/feeding-service/internal/nutrition"
	"github.com/guttosm/feeding-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockFeedingTargetsService struct {
	mock.Mock
}

func (m *MockFeedingTargetsService) Save(
	ctx context.Context,
	dogID string,
	profile nutrition.Profile,
	plan nutrition.Plan,
	createdBy string,
) (*repository.FeedingTarget, error) {
	args := m.Called(ctx, dogID, profile, plan, createdBy)
	if fn, ok := args.Get(0).(func(context.Context, string, nutrition.Profile, nutrition.Plan, string) (*repository.FeedingTarget, error)); ok {
		return fn(ctx, dogID, profile, plan, createdBy)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.FeedingTarget), args.Error(1)
}

func (m *MockFeedingTargetsService) GetActive(ctx context.Context, dogID string) (*repository.FeedingTarget, error) {
	args := m.Called(ctx, dogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.FeedingTarget), args.Error(1)
}

func (m *MockFeedingTargetsService) History(ctx context.Context, dogID string, limit int) ([]repository.FeedingTarget, error) {
	args := m.Called(ctx, dogID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FeedingTarget), args.Error(1)
}

// NewMockFeedingTargetsService creates a MockFeedingTargetsService and asserts its expectations when the test ends.
func NewMockFeedingTargetsService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFeedingTargetsService {
	m := &MockFeedingTargetsService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
