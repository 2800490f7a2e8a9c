package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shoplist-backend/domain/core/aggregates"
	"shoplist-backend/domain/core/valueobjects"
	"shoplist-backend/domain/events"
)

// MockListRepository is a testify mock for the ListRepository port
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Save(ctx context.Context, list *aggregates.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) GetByID(ctx context.Context, id valueobjects.ListID) (*aggregates.List, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*aggregates.List), args.Error(1)
}

func (m *MockListRepository) FindByPrincipal(ctx context.Context, principalID string) ([]*aggregates.List, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*aggregates.List), args.Error(1)
}

func (m *MockListRepository) Delete(ctx context.Context, id valueobjects.ListID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventPublisher is a testify mock for the EventPublisher port
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}
