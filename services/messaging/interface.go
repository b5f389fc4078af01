package messaging

import (
	"context"
	"fmt"

	"hireme/database/repository"
	"hireme/models"
)

// ThreadNotFoundError signals a message operation against a booking that
// does not exist.
type ThreadNotFoundError struct {
	BookingID string
}

func (e *ThreadNotFoundError) Error() string {
	return fmt.Sprintf("no booking %s to message on", e.BookingID)
}

// ValidationError signals a rejected message input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ChatSummary is one entry in a user's conversation list.
type ChatSummary struct {
	BookingID       string `json:"bookingId"`
	PartnerID       string `json:"partnerId"`
	PartnerName     string `json:"partnerName"`
	ServiceCategory string `json:"serviceCategory"`
	LastMessage     string `json:"lastMessage"`
	LastActivity    int64  `json:"lastActivity"` // unix millis
	UnreadCount     int    `json:"unreadCount"`
}

// ThreadSnapshot is one poll result for an open conversation.
type ThreadSnapshot struct {
	BookingID string           `json:"bookingId"`
	Messages  []models.Message `json:"messages"`
}

// MessagingService manages per-booking, append-only, timestamp-ordered
// message threads and their read state.
type MessagingService interface {
	// Send appends an unread message to a booking's thread.
	Send(bookingID, senderID, content string) (*models.Message, error)
	// Thread returns a booking's messages in timestamp order.
	Thread(bookingID string) ([]models.Message, error)
	// MarkRead flags every message not sent by readerID as read. Idempotent.
	MarkRead(bookingID, readerID string) error
	// UnreadCount counts unread messages from senders other than userID.
	UnreadCount(bookingID, userID string) (int, error)
	// Threads lists a user's conversations, most recently active first.
	Threads(userID string, actingAs models.Role) ([]ChatSummary, error)
	// Watch re-reads and marks read an open conversation on a fixed period
	// until ctx is cancelled, emitting a snapshot per tick.
	Watch(ctx context.Context, bookingID, readerID string) (<-chan ThreadSnapshot, error)
}

// DefaultMessagingService implements MessagingService.
type DefaultMessagingService struct {
	Messages repository.MessageRepository
	Bookings repository.BookingRepository
}
