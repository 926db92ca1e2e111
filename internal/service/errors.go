package service

import "fmt"

// ValidationError marks a submission the client got wrong. It always maps to
// a client-error status; the detail is for server-side logs only.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError marks a failed datastore interaction. It always maps to a
// server-error status. A single attempt is made; there is no retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
