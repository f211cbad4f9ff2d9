package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
)

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop().Sugar()

	t.Run("should persist a pending order and publish order.created", func(t *testing.T) {
		repo := &MockOrderRepository{}
		publisher := &MockEventPublisher{}
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
		publisher.On("PublishOrderCreated", ctx, mock.AnythingOfType("*order.Order")).Return()

		handler := commands.NewCreateOrderCommandHandler(repo, publisher, log)
		cmd, err := commands.NewCreateOrderCommand("c1", []string{"i1"})
		require.NoError(t, err)

		created, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID())
		assert.Equal(t, order.Pending, created.Status())
		assert.Equal(t, "c1", created.CustomerID())
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("should assign a fresh id to every order", func(t *testing.T) {
		repo := &MockOrderRepository{}
		publisher := &MockEventPublisher{}
		repo.On("Add", ctx, mock.Anything).Return(nil)
		publisher.On("PublishOrderCreated", ctx, mock.Anything).Return()

		handler := commands.NewCreateOrderCommandHandler(repo, publisher, log)
		cmd, err := commands.NewCreateOrderCommand("c1", []string{"i1"})
		require.NoError(t, err)

		seen := map[string]bool{}
		for i := 0; i < 10; i++ {
			created, err := handler.Handle(ctx, cmd)
			require.NoError(t, err)
			assert.False(t, seen[created.ID()], "id %s issued twice", created.ID())
			seen[created.ID()] = true
		}
	})

	t.Run("should not publish when the store rejects the order", func(t *testing.T) {
		repo := &MockOrderRepository{}
		publisher := &MockEventPublisher{}
		repo.On("Add", ctx, mock.Anything).Return(assert.AnError)

		handler := commands.NewCreateOrderCommandHandler(repo, publisher, log)
		cmd, err := commands.NewCreateOrderCommand("c1", []string{"i1"})
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		publisher.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
	})

	t.Run("should reject an unconstructed command", func(t *testing.T) {
		handler := commands.NewCreateOrderCommandHandler(&MockOrderRepository{}, &MockEventPublisher{}, log)

		_, err := handler.Handle(ctx, commands.CreateOrderCommand{})

		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
