package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles order status updates.
// The state machine decides whether the transition is legal; on rejection
// the stored order is left untouched and no event is published.
type ChangeOrderStatusCommandHandler struct {
	orderRepository ports.OrderRepository
	eventPublisher  ports.EventPublisher
	log             *zap.SugaredLogger
}

// NewChangeOrderStatusCommandHandler creates a handler for order status
// updates.
func NewChangeOrderStatusCommandHandler(
	orderRepository ports.OrderRepository,
	eventPublisher ports.EventPublisher,
	log *zap.SugaredLogger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		orderRepository: orderRepository,
		eventPublisher:  eventPublisher,
		log:             log,
	}
}

// Handle processes the status change and returns the updated aggregate.
// A rejected transition surfaces as a conflict carrying both the current
// and the requested status; the new status is persisted only when the
// transition is accepted.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previousStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		var transitionErr *order.TransitionError
		if errors.As(err, &transitionErr) {
			return nil, errs.NewConflictError(transitionErr.Error())
		}
		return nil, err
	}

	if err = h.orderRepository.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	h.eventPublisher.PublishOrderUpdated(ctx, aggregate, previousStatus)

	h.log.Infow("order status updated",
		"order_id", aggregate.ID(),
		"previous_status", previousStatus,
		"new_status", aggregate.Status(),
	)

	return aggregate, nil
}
