package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"orders/internal/core/domain/model/order"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, limit int, offset int) ([]*order.Order, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*order.Order), args.Int(1), args.Error(2)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderCreated(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

func (m *MockEventPublisher) PublishOrderUpdated(ctx context.Context, o *order.Order, previousStatus order.Status) {
	m.Called(ctx, o, previousStatus)
}
