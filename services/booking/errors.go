package booking

import (
	"fmt"

	"hireme/models"
)

// NotFoundError signals that the referenced booking does not exist.
// Lifecycle operations against a missing booking surface this instead of
// silently no-oping.
type NotFoundError struct {
	BookingID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.BookingID)
}

// InvalidTransitionError signals a status change outside the allowed graph.
// The requested edge was not applied.
type InvalidTransitionError struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor models.Role
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s for %s", e.From, e.To, e.Actor)
}

// ConflictError signals a lost optimistic-concurrency race: another writer
// updated the booking between the read and the write.
type ConflictError struct {
	BookingID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking %s was modified concurrently, retry", e.BookingID)
}

// ValidationError signals a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
