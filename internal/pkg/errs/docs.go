// Package errs provides the standardized error taxonomy for the orders service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The taxonomy is a closed set of kinds, each carrying the problem type,
// title, and HTTP status that the outer boundary maps it to:
//   - validation_error (400): malformed or missing input
//   - unauthorized (401): missing, invalid, or expired credential
//   - forbidden (403): valid credential, insufficient scope
//   - not_found (404): unknown resource
//   - conflict (409): illegal state transition
//   - internal_error (500): anything unanticipated
//
// Each kind follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is checks
//
// Components raise the most specific kind they can determine; handlers pass
// these through unchanged so the HTTP boundary can map them exactly once.
package errs
