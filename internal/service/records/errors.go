package records

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a well-formed id with no matching record.
var ErrNotFound = errors.New("record not found")

// ValidationError reports client input that cannot be accepted: a missing
// required field, an out-of-range value, or a malformed identifier. It is
// never retried and always maps to a client error at the transport.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("field %q %s", e.Field, e.Reason)
}

// PersistenceError wraps a store failure. The in-flight change is not
// visible; transports surface it as a server error.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func missingField(name string) error {
	return &ValidationError{Field: name, Reason: "is required"}
}

func invalidField(name, reason string) error {
	return &ValidationError{Field: name, Reason: reason}
}
