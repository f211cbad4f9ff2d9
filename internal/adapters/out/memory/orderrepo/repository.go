// Package orderrepo provides an in-memory implementation of the order
// repository. A single mutex guards the map and the insertion-order
// index, so concurrent create, get, update, and list calls always observe
// a consistent store.
package orderrepo

import (
	"context"
	"fmt"
	"sync"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// Repository stores order aggregates in memory. Orders are kept as clones
// both on the way in and on the way out: nothing a caller holds aliases
// repository state.
type Repository struct {
	mu sync.RWMutex

	orders map[string]*order.Order
	// ids preserves creation order for stable listing.
	ids []string
}

// NewRepository creates an empty in-memory order repository.
func NewRepository() *Repository {
	return &Repository{
		orders: make(map[string]*order.Order),
	}
}

// Add persists a new order. Ids are never reused, so adding an existing
// id is a conflict.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; exists {
		return errs.NewConflictError(fmt.Sprintf("order with ID %s already exists", aggregate.ID()))
	}

	r.orders[aggregate.ID()] = aggregate.Clone()
	r.ids = append(r.ids, aggregate.ID())
	return nil
}

// Update persists changes to an existing order.
func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; !exists {
		return notFound(aggregate.ID())
	}

	r.orders[aggregate.ID()] = aggregate.Clone()
	return nil
}

// Get retrieves a copy of the order with the given id.
func (r *Repository) Get(_ context.Context, id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, ok := r.orders[id]
	if !ok {
		return nil, notFound(id)
	}
	return aggregate.Clone(), nil
}

// List returns the page [offset, offset+limit) of orders in creation
// order, clipped to the available length, plus the total count.
func (r *Repository) List(_ context.Context, limit int, offset int) ([]*order.Order, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.ids)

	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	page := make([]*order.Order, 0, end-start)
	for _, id := range r.ids[start:end] {
		page = append(page, r.orders[id].Clone())
	}
	return page, total, nil
}

func notFound(id string) error {
	return errs.NewNotFoundError(fmt.Sprintf("Order with ID %s not found", id))
}
