package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// EventPublisher emits domain events when orders change state.
//
// Delivery is fire-and-forget and synchronous: publishing must never fail
// the triggering request, so implementations swallow and log their own
// transport errors instead of returning them. Swapping in a durable
// broker is expected to preserve this contract and the event envelope.
type EventPublisher interface {
	// PublishOrderCreated emits an order.created event for a freshly
	// created order.
	PublishOrderCreated(ctx context.Context, aggregate *order.Order)

	// PublishOrderUpdated emits an order.updated event after a successful
	// status transition, carrying the status the order held before.
	PublishOrderUpdated(ctx context.Context, aggregate *order.Order, previousStatus order.Status)
}
