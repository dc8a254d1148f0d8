package estimate

import "fmt"

// NotFoundError reports which reference dataset had no active record for the
// requested key, so an operator can spot missing seed data from the message.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no active %s for %s", e.Resource, e.Key)
}

// ValidationError is malformed input caught before any storage lookup runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
