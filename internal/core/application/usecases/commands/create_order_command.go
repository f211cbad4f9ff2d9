package commands

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order.
// Carries the customer placing the order and the item identifiers.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	items      []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The customer id is trimmed and must be non-empty; blank items are
// filtered out and at least one must remain. Violations are reported as
// validation errors before anything reaches the store.
func NewCreateOrderCommand(customerID string, items []string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the trimmed customer identifier.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns the filtered item identifiers.
func (c CreateOrderCommand) Items() []string {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValidationError("customerId should not be empty")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []string) error {
	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	if len(filtered) == 0 {
		return errs.NewValidationError("items must contain at least 1 valid elements")
	}

	c.items = filtered
	return nil
}
