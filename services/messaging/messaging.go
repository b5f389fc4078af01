package messaging

import (
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "hireme/database/repository/booking"
	"hireme/models"
	"hireme/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Send appends an unread message to a booking's thread. Content must be
// non-empty after trimming; the booking must exist.
func (svc *DefaultMessagingService) Send(bookingID, senderID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &ValidationError{Field: "content", Message: "must not be empty"}
	}
	if senderID == "" {
		return nil, &ValidationError{Field: "senderId", Message: "must not be empty"}
	}
	if err := svc.ensureBooking(bookingID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		SenderID:  senderID,
		Content:   content,
		Timestamp: time.Now(),
		IsRead:    false,
	}
	if err := svc.Messages.Append(msg); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return msg, nil
}

// Thread returns a booking's messages in timestamp order.
func (svc *DefaultMessagingService) Thread(bookingID string) ([]models.Message, error) {
	return svc.Messages.ListByBooking(bookingID)
}

// MarkRead flags every message not sent by readerID as read. Calling it
// again is a no-op.
func (svc *DefaultMessagingService) MarkRead(bookingID, readerID string) error {
	marked, err := svc.Messages.MarkRead(bookingID, readerID)
	if err != nil {
		return fmt.Errorf("failed to mark thread read: %w", err)
	}
	if marked > 0 {
		utils.GetLogger().Debug("marked messages read",
			zap.String("bookingID", bookingID),
			zap.String("readerID", readerID),
			zap.Int("count", marked))
	}
	return nil
}

// UnreadCount counts unread messages from senders other than userID.
func (svc *DefaultMessagingService) UnreadCount(bookingID, userID string) (int, error) {
	msgs, err := svc.Messages.ListByBooking(bookingID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, m := range msgs {
		if m.SenderID != userID && !m.IsRead {
			count++
		}
	}
	return count, nil
}

func (svc *DefaultMessagingService) ensureBooking(bookingID string) error {
	_, err := svc.Bookings.GetByID(bookingID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return &ThreadNotFoundError{BookingID: bookingID}
	}
	return err
}
