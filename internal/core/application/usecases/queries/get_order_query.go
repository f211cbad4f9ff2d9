package queries

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by its identifier.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order id.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	if strings.TrimSpace(orderID) == "" {
		return GetOrderQuery{}, errs.NewValidationError("order id should not be empty")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}
