package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per kind. Use errors.Is against these to branch on
// the kind of a ServiceError without inspecting its fields.
var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrObjectNotFound     = errors.New("object not found")
	ErrTransitionRejected = errors.New("transition rejected")
	ErrInternal           = errors.New("internal error")
)

// Problem type identifiers as they appear in the "type" field of
// application/problem+json responses.
const (
	TypeValidationError = "validation_error"
	TypeUnauthorized    = "unauthorized"
	TypeForbidden       = "forbidden"
	TypeNotFound        = "not_found"
	TypeConflict        = "conflict"
	TypeInternalError   = "internal_error"
)

// ServiceError is the single error variant crossing component boundaries.
// It carries everything the outer boundary needs to render an RFC 7807
// problem response: the machine-readable type, a human title, the HTTP
// status, and a crafted detail string.
//
// ServiceError values are only created through the per-kind constructors
// below, keeping the taxonomy closed.
type ServiceError struct {
	Type   string
	Title  string
	Status int
	Detail string
	Cause  error

	sentinel error
}

// Error formats the error as "<title>: <detail>", appending the cause
// when one is present. Detail strings are sanitized so a single error
// always occupies a single log line.
func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("%s: %s", strings.ToLower(e.Title), sanitize(e.Detail))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause.Error()))
	}
	return msg
}

// Unwrap returns the kind sentinel so callers can use errors.Is to test
// for a specific kind.
func (e *ServiceError) Unwrap() error {
	return e.sentinel
}

// NewValidationError creates a validation_error (400) with the given detail.
func NewValidationError(detail string) *ServiceError {
	return &ServiceError{
		Type:     TypeValidationError,
		Title:    "Validation Error",
		Status:   400,
		Detail:   detail,
		sentinel: ErrValidationFailed,
	}
}

// NewValidationErrorWithCause creates a validation_error (400) wrapping the
// underlying cause, e.g. a JSON decoding failure.
func NewValidationErrorWithCause(detail string, cause error) *ServiceError {
	err := NewValidationError(detail)
	err.Cause = cause
	return err
}

// NewUnauthorizedError creates an unauthorized (401) with the given detail.
func NewUnauthorizedError(detail string) *ServiceError {
	return &ServiceError{
		Type:     TypeUnauthorized,
		Title:    "Unauthorized",
		Status:   401,
		Detail:   detail,
		sentinel: ErrUnauthenticated,
	}
}

// NewUnauthorizedErrorWithCause creates an unauthorized (401) wrapping the
// underlying credential verification failure.
func NewUnauthorizedErrorWithCause(detail string, cause error) *ServiceError {
	err := NewUnauthorizedError(detail)
	err.Cause = cause
	return err
}

// NewForbiddenError creates a forbidden (403) with the given detail.
// Forbidden is distinct from unauthorized: the credential was valid but
// the granted scopes are insufficient.
func NewForbiddenError(detail string) *ServiceError {
	return &ServiceError{
		Type:     TypeForbidden,
		Title:    "Forbidden",
		Status:   403,
		Detail:   detail,
		sentinel: ErrForbidden,
	}
}

// NewNotFoundError creates a not_found (404) with the given detail.
func NewNotFoundError(detail string) *ServiceError {
	return &ServiceError{
		Type:     TypeNotFound,
		Title:    "Not Found",
		Status:   404,
		Detail:   detail,
		sentinel: ErrObjectNotFound,
	}
}

// NewConflictError creates a conflict (409) with the given detail.
// Used for rejected order status transitions.
func NewConflictError(detail string) *ServiceError {
	return &ServiceError{
		Type:     TypeConflict,
		Title:    "Conflict",
		Status:   409,
		Detail:   detail,
		sentinel: ErrTransitionRejected,
	}
}

// NewInternalError creates an internal_error (500) wrapping an unanticipated
// failure. The cause never crosses the service boundary; only the generic
// detail does.
func NewInternalError(cause error) *ServiceError {
	return &ServiceError{
		Type:     TypeInternalError,
		Title:    "Internal Server Error",
		Status:   500,
		Detail:   "An unexpected error occurred",
		Cause:    cause,
		sentinel: ErrInternal,
	}
}

// FromError classifies an arbitrary error into the taxonomy. ServiceErrors
// pass through unchanged; anything unclassified becomes an internal_error.
func FromError(err error) *ServiceError {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return NewInternalError(err)
}

// sanitize collapses newlines so error text cannot break log formats.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
