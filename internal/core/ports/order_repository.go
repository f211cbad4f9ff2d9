package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must be safe for concurrent use and must never hand out
// state that can be mutated behind their back.
type OrderRepository interface {
	// Add persists a new order aggregate. The order id must not already
	// exist in the repository; ids are never reused.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns a not found error when the id is unknown.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns a not found error when the id is unknown.
	Get(ctx context.Context, id string) (*order.Order, error)

	// List returns the page [offset, offset+limit) of orders in creation
	// order, together with the total count irrespective of pagination.
	List(ctx context.Context, limit int, offset int) ([]*order.Order, int, error)
}
