package store

import "fmt"

// SlotUnavailableError reports a reservation attempt on a time that is not
// free. Available carries the date's current free times (empty for unknown
// dates) so callers can present alternatives.
type SlotUnavailableError struct {
	Date      string
	Time      string
	Available []string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot %s %s is not available", e.Date, e.Time)
}

// NotFoundError reports an unknown booking or order identifier.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// InvalidTransitionError reports a booking status change that the state
// machine does not allow (e.g. out of a terminal state).
type InvalidTransitionError struct {
	ID   string
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("booking %s cannot move from %s to %s", e.ID, e.From, e.To)
}
