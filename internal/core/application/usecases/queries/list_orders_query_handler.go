package queries

import (
	"context"

	"go.uber.org/zap"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// ListOrdersQueryResponse is a page of orders plus the pagination window
// it was produced for. Total counts every stored order, not just the page.
type ListOrdersQueryResponse struct {
	Orders []*order.Order
	Total  int
	Limit  int
	Offset int
}

// ListOrdersQueryHandler retrieves order pages from the repository.
type ListOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
	log             *zap.SugaredLogger
}

// NewListOrdersQueryHandler creates a handler for paginated order
// listings.
func NewListOrdersQueryHandler(orderRepository ports.OrderRepository, log *zap.SugaredLogger) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		orderRepository: orderRepository,
		log:             log,
	}
}

// Handle executes the listing. Ordering is stable by creation order and
// the page is clipped to the available length.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	orders, total, err := h.orderRepository.List(ctx, query.Limit(), query.Offset())
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	h.log.Debugw("orders listed",
		"total", total,
		"limit", query.Limit(),
		"offset", query.Offset(),
		"returned", len(orders),
	)

	return ListOrdersQueryResponse{
		Orders: orders,
		Total:  total,
		Limit:  query.Limit(),
		Offset: query.Offset(),
	}, nil
}
