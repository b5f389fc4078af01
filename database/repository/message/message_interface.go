package messageRepo

import "hireme/models"

// MessageRepository defines methods for chat message data access. Messages
// are append-only; the only permitted mutation is flipping IsRead to true.
type MessageRepository interface {
	// ListByBooking retrieves a booking's thread in timestamp order.
	ListByBooking(bookingID string) ([]models.Message, error)
	// Append inserts a new message record.
	Append(message *models.Message) error
	// MarkRead sets IsRead on every message in the thread whose sender is
	// not readerID. Returns the number of messages newly marked.
	MarkRead(bookingID, readerID string) (int, error)
}
