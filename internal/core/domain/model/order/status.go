package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	pending ──> paid ──> shipped ──> delivered
//
// Status is a value object: transition validation is a pure function with
// no I/O and no logging. Callers log and publish events.
type Status string

const (
	// Pending is the initial status of every order. It is the only valid
	// creation state.
	Pending Status = "pending"

	// Paid indicates payment was received for the order.
	Paid Status = "paid"

	// Shipped indicates the order left the warehouse.
	Shipped Status = "shipped"

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered Status = "delivered"
)

// getAllowedTransitions returns the fixed transition table. Each status
// has at most one legal successor; delivered has none.
func getAllowedTransitions() map[Status]Status {
	return map[Status]Status{
		Pending: Paid,
		Paid:    Shipped,
		Shipped: Delivered,
	}
}

// Validate checks that the Status value is one of the four known states.
//
// Returns a validation error for anything else, including the empty
// string. Used to vet status values arriving from external input before
// they reach the transition table.
func (s Status) Validate() error {
	switch s {
	case Pending, Paid, Shipped, Delivered:
		return nil
	default:
		return errs.NewValidationError(fmt.Sprintf("%q is not a valid order status", string(s)))
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// TransitionError reports a rejected status transition. It carries both
// the current and the requested status so the caller can format a
// message.
type TransitionError struct {
	From Status
	To   Status
}

// Error implements the error interface.
func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot update order status from %s to %s", e.From, e.To)
}

// TransitionTo validates the requested transition against the transition
// table and returns the new status when it is legal.
//
// Every pair outside {pending→paid, paid→shipped, shipped→delivered} is
// rejected with a TransitionError, including self-transitions (requesting
// the status the order already holds is not idempotent) and any
// transition out of delivered.
func (s Status) TransitionTo(requested Status) (Status, error) {
	if next, ok := getAllowedTransitions()[s]; ok && next == requested {
		return requested, nil
	}
	return "", &TransitionError{From: s, To: requested}
}
