package messaging

import (
	"fmt"
	"sort"
	"time"

	"hireme/models"
)

// scheduledAtLayout matches the display format bookings are scheduled with,
// e.g. "2024-01-01 10:00 AM".
const scheduledAtLayout = "2006-01-02 03:04 PM"

// Threads lists a user's conversations in the given capacity, most recently
// active first. A thread with no messages falls back to the booking's
// scheduled time for its activity stamp.
func (svc *DefaultMessagingService) Threads(userID string, actingAs models.Role) ([]ChatSummary, error) {
	var (
		bookings []models.Booking
		err      error
	)
	if actingAs == models.RoleProvider {
		bookings, err = svc.Bookings.ListByProvider(userID)
	} else {
		bookings, err = svc.Bookings.ListByCustomer(userID)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]ChatSummary, 0, len(bookings))
	for _, b := range bookings {
		msgs, err := svc.Messages.ListByBooking(b.ID)
		if err != nil {
			return nil, err
		}

		summary := ChatSummary{
			BookingID:       b.ID,
			ServiceCategory: b.ServiceCategory,
			LastMessage:     "Chat started",
			LastActivity:    fallbackActivity(b),
		}
		if actingAs == models.RoleProvider {
			summary.PartnerID = b.CustomerID
			summary.PartnerName = partnerName(b.CustomerName, b.CustomerID)
		} else {
			summary.PartnerID = b.ProviderID
			summary.PartnerName = b.ProviderName
		}

		if len(msgs) > 0 {
			last := msgs[len(msgs)-1]
			summary.LastMessage = last.Content
			summary.LastActivity = last.Timestamp.UnixMilli()
		}
		for _, m := range msgs {
			if m.SenderID != userID && !m.IsRead {
				summary.UnreadCount++
			}
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastActivity > summaries[j].LastActivity
	})
	return summaries, nil
}

func partnerName(cached, id string) string {
	if cached != "" {
		return cached
	}
	if len(id) > 5 {
		id = id[:5]
	}
	return fmt.Sprintf("Customer #%s", id)
}

func fallbackActivity(b models.Booking) int64 {
	if t, err := time.Parse(scheduledAtLayout, b.ScheduledAt); err == nil {
		return t.UnixMilli()
	}
	return b.CreatedAt.UnixMilli()
}
