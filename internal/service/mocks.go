package service

import (
	"context"
	"github.com/stretchr/testify/mock"
)

type MockTransactor struct {
	mock.Mock
}

func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// MockRepository implements repository.Repository for any row type.
type MockRepository[E any] struct {
	mock.Mock
}

func (m *MockRepository[E]) Create(ctx context.Context, fields map[string]any) (*E, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockRepository[E]) Get(ctx context.Context, key string) (*E, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockRepository[E]) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[E]) List(ctx context.Context, filter map[string]any) ([]*E, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*E), args.Error(1)
}

func (m *MockRepository[E]) FindFirst(ctx context.Context, filter map[string]any) (*E, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockRepository[E]) Patch(ctx context.Context, key string, fields map[string]any) (*E, error) {
	args := m.Called(ctx, key, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockRepository[E]) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
