package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// Pagination bounds for order listings. Out-of-range values are rejected,
// never clamped.
const (
	MinLimit = 1
	MaxLimit = 100
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves a page of orders in creation order.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the page [offset, offset+limit).
// The limit must lie in [1, 100] and the offset must be non-negative;
// violations are validation errors.
func NewListOrdersQuery(limit int, offset int) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setLimit(limit),
		query.setOffset(offset),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of orders to skip.
func (q ListOrdersQuery) Offset() int {
	return q.offset
}

func (q *ListOrdersQuery) setLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return errs.NewValidationError("limit must be between 1 and 100")
	}

	q.limit = limit
	return nil
}

func (q *ListOrdersQuery) setOffset(offset int) error {
	if offset < 0 {
		return errs.NewValidationError("offset must be greater than or equal to 0")
	}

	q.offset = offset
	return nil
}
