// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/feeding-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockFeedingTargetsRepositoryInterface struct {
	mock.Mock
}

func (m *MockFeedingTargetsRepositoryInterface) Save(ctx context.Context, target *repository.FeedingTarget) (*repository.FeedingTarget, error) {
	args := m.Called(ctx, target)
	if fn, ok := args.Get(0).(func(context.Context, *repository.FeedingTarget) *repository.FeedingTarget); ok {
		return fn(ctx, target), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.FeedingTarget), args.Error(1)
}

func (m *MockFeedingTargetsRepositoryInterface) GetActive(ctx context.Context, dogID string) (*repository.FeedingTarget, error) {
	args := m.Called(ctx, dogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.FeedingTarget), args.Error(1)
}

func (m *MockFeedingTargetsRepositoryInterface) History(ctx context.Context, dogID string, limit int) ([]repository.FeedingTarget, error) {
	args := m.Called(ctx, dogID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FeedingTarget), args.Error(1)
}

// NewMockFeedingTargetsRepositoryInterface creates a MockFeedingTargetsRepositoryInterface and asserts its expectations when the test ends.
func NewMockFeedingTargetsRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFeedingTargetsRepositoryInterface {
	m := &MockFeedingTargetsRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
