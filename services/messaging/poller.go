package messaging

import (
	"context"
	"time"

	"hireme/config"
	"hireme/utils"

	"go.uber.org/zap"
)

// Watch drives the refresh loop for an open conversation view: on a fixed
// period it re-reads the thread, marks incoming messages read and emits a
// snapshot. It never writes new content. The channel closes when ctx is
// cancelled.
func (svc *DefaultMessagingService) Watch(ctx context.Context, bookingID, readerID string) (<-chan ThreadSnapshot, error) {
	if err := svc.ensureBooking(bookingID); err != nil {
		return nil, err
	}

	period := time.Duration(config.AppConfig.ChatPollSeconds) * time.Second
	if period <= 0 {
		period = 2 * time.Second
	}

	out := make(chan ThreadSnapshot, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		// Deliver the opening snapshot immediately, reads marked, so the
		// view does not wait a full period.
		svc.emit(ctx, bookingID, readerID, out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				svc.emit(ctx, bookingID, readerID, out)
			}
		}
	}()
	return out, nil
}

func (svc *DefaultMessagingService) emit(ctx context.Context, bookingID, readerID string, out chan<- ThreadSnapshot) {
	if err := svc.MarkRead(bookingID, readerID); err != nil {
		utils.GetLogger().Warn("conversation refresh mark-read failed",
			zap.String("bookingID", bookingID), zap.Error(err))
	}
	msgs, err := svc.Thread(bookingID)
	if err != nil {
		utils.GetLogger().Warn("conversation refresh read failed",
			zap.String("bookingID", bookingID), zap.Error(err))
		return
	}
	select {
	case out <- ThreadSnapshot{BookingID: bookingID, Messages: msgs}:
	case <-ctx.Done():
	}
}
