package commands

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in pending status with a freshly generated id, are
// persisted, and announced with an order.created event.
type CreateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
	eventPublisher  ports.EventPublisher
	log             *zap.SugaredLogger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	orderRepository ports.OrderRepository,
	eventPublisher ports.EventPublisher,
	log *zap.SugaredLogger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepository: orderRepository,
		eventPublisher:  eventPublisher,
		log:             log,
	}
}

// Handle processes the order creation command and returns the created
// aggregate. The order.created event is published after the store accepts
// the order; event delivery never fails the request.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(uuid.NewString(), cmd.CustomerID(), cmd.Items())
	if err != nil {
		return nil, err
	}

	if err = h.orderRepository.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	h.eventPublisher.PublishOrderCreated(ctx, aggregate)

	h.log.Infow("order created",
		"order_id", aggregate.ID(),
		"customer_id", aggregate.CustomerID(),
		"items_count", len(aggregate.Items()),
		"status", aggregate.Status(),
	)

	return aggregate, nil
}
