package order

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer purchase. It is the aggregate root managing
// the order lifecycle from creation through payment, shipping, and
// delivery.
//
// Order maintains these invariants:
//   - id is non-empty, assigned at creation, and immutable
//   - customerId is non-empty after trimming and immutable
//   - items contains at least one non-blank entry and is immutable
//   - status only changes along the state machine's transition table
//
// The struct uses private fields so every mutation goes through a
// validated method.
type Order struct {
	// id is the opaque unique identifier for the order
	id string

	// customerID identifies the customer who placed the order
	customerID string

	// items is the ordered sequence of item identifiers
	items []string

	// status is the current state in the order lifecycle
	status Status

	guard guard.ConstructorGuard
}

// NewOrder creates an Order in pending status with validation. This is
// the only way to create a valid Order.
//
// The customer id is trimmed and must be non-empty. Blank item entries
// are filtered out and at least one item must remain. Violations are
// reported as validation errors before any state is built.
func NewOrder(id string, customerID string, items []string) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder, preventing zero-value aggregates from bypassing validation.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the item identifiers. The copy keeps the
// aggregate's own slice immutable from the outside.
func (o *Order) Items() []string {
	items := make([]string, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus moves the order to the requested status.
//
// The transition is delegated to the state machine; on rejection the
// order is left unchanged and the returned TransitionError carries both
// the current and the requested status.
func (o *Order) ChangeStatus(requested Status) error {
	newStatus, err := o.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Clone returns a deep copy of the order. The repository hands out and
// stores clones so callers never share mutable state with it.
func (o *Order) Clone() *Order {
	clone := *o
	clone.items = make([]string, len(o.items))
	copy(clone.items, o.items)
	return &clone
}

func (o *Order) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValidationError("order id should not be empty")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValidationError("customerId should not be empty")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []string) error {
	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	if len(filtered) == 0 {
		return errs.NewValidationError("items must contain at least 1 valid elements")
	}
	o.items = filtered
	return nil
}
