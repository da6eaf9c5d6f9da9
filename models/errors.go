package models

import "fmt"

// Error taxonomy shared by the booking and catalog services. Handlers
// discriminate with errors.As and map each type to a distinct HTTP status,
// so callers always get a stable discriminant rather than a flattened
// message string.

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

// InvalidTransitionError reports a status or payment-status transition
// outside the allowed edge set.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transition %s -> %s is not permitted", e.From, e.To)
}

// PreconditionError reports an operation that requires a different current
// state, e.g. completing a booking that is not in progress.
type PreconditionError struct {
	Op      string
	Current string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s requires a different booking state (current: %s)", e.Op, e.Current)
}

// NotFoundError reports an id that does not resolve under the caller's
// scope. A record owned by someone else is indistinguishable from a
// missing one.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// StoreUnavailableError wraps persistence-layer failures so callers can
// present "service temporarily unavailable" instead of a generic error.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %v", e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}
