// Code generated manually. DO NOT EDIT.

package mocks

import (
	"time"

	"github.com/guttosm/feeding-service/internal/nutrition"
	"github.com/stretchr/testify/mock"
)

type MockFeedingCalculator struct {
	mock.Mock
}

func (m *MockFeedingCalculator) Adult(in nutrition.AdultInput) (nutrition.Plan, error) {
	args := m.Called(in)
	return args.Get(0).(nutrition.Plan), args.Error(1)
}

func (m *MockFeedingCalculator) Puppy(in nutrition.PuppyInput) (nutrition.Plan, error) {
	args := m.Called(in)
	return args.Get(0).(nutrition.Plan), args.Error(1)
}

func (m *MockFeedingCalculator) Plan(p nutrition.Profile, now time.Time) (nutrition.Plan, error) {
	args := m.Called(p, now)
	return args.Get(0).(nutrition.Plan), args.Error(1)
}

func (m *MockFeedingCalculator) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func (m *MockFeedingCalculator) InvalidateCache() {
	m.Called()
}

// NewMockFeedingCalculator creates a MockFeedingCalculator and asserts its expectations when the test ends.
func NewMockFeedingCalculator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFeedingCalculator {
	m := &MockFeedingCalculator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
