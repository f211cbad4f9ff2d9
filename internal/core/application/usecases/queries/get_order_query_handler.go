package queries

import (
	"context"

	"go.uber.org/zap"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// GetOrderQueryHandler retrieves single orders from the repository.
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
	log             *zap.SugaredLogger
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orderRepository ports.OrderRepository, log *zap.SugaredLogger) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orderRepository: orderRepository,
		log:             log,
	}
}

// Handle executes the lookup. Unknown ids surface as not found errors.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	h.log.Debugw("order retrieved", "order_id", aggregate.ID(), "status", aggregate.Status())
	return aggregate, nil
}
