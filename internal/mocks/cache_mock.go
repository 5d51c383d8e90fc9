// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/feeding-service/internal/nutrition"
	"github.com/stretchr/testify/mock"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(key string) (nutrition.Plan, bool) {
	args := m.Called(key)
	return args.Get(0).(nutrition.Plan), args.Bool(1)
}

func (m *MockCache) Set(key string, value nutrition.Plan) {
	m.Called(key, value)
}

func (m *MockCache) Invalidate(key string) {
	m.Called(key)
}

func (m *MockCache) Clear() {
	m.Called()
}

func (m *MockCache) Stop() {
	m.Called()
}

// NewMockCache creates a MockCache and asserts its expectations when the test ends.
func NewMockCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCache {
	m := &MockCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
