package messaging

import (
	"context"
	"testing"
	"time"

	bookingRepo "hireme/database/repository/booking"
	messageRepo "hireme/database/repository/message"
	"hireme/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessaging(t *testing.T) (*DefaultMessagingService, *bookingRepo.MemoryBookingRepo) {
	t.Helper()
	bookings := bookingRepo.NewMemoryBookingRepo()
	svc := &DefaultMessagingService{
		Messages: messageRepo.NewMemoryMessageRepo(),
		Bookings: bookings,
	}
	return svc, bookings
}

func seedBooking(t *testing.T, bookings *bookingRepo.MemoryBookingRepo, b models.Booking) {
	t.Helper()
	require.NoError(t, bookings.Create(&b))
}

func TestSendAndUnread(t *testing.T) {
	svc, bookings := newTestMessaging(t)
	seedBooking(t, bookings, models.Booking{ID: "bk_1", CustomerID: "cust", ProviderID: "prov"})

	msg, err := svc.Send("bk_1", "prov", "On my way.")
	require.NoError(t, err)
	assert.False(t, msg.IsRead)
	assert.Equal(t, "prov", msg.SenderID)

	// Unread for the other party, never for the sender.
	n, err := svc.UnreadCount("bk_1", "cust")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = svc.UnreadCount("bk_1", "prov")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestMarkReadIdempotent(t *testing.T) {
	svc, bookings := newTestMessaging(t)
	seedBooking(t, bookings, models.Booking{ID: "bk_1", CustomerID: "cust", ProviderID: "prov"})

	_, err := svc.Send("bk_1", "prov", "first")
	require.NoError(t, err)
	_, err = svc.Send("bk_1", "prov", "second")
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead("bk_1", "cust"))
	n, err := svc.UnreadCount("bk_1", "cust")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// A second pass changes nothing.
	require.NoError(t, svc.MarkRead("bk_1", "cust"))
	n, err = svc.UnreadCount("bk_1", "cust")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// The sender's own messages stay untouched from their side.
	n, err = svc.UnreadCount("bk_1", "prov")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSendValidation(t *testing.T) {
	svc, bookings := newTestMessaging(t)
	seedBooking(t, bookings, models.Booking{ID: "bk_1"})

	var verr *ValidationError
	_, err := svc.Send("bk_1", "cust", "   ")
	require.ErrorAs(t, err, &verr)
	_, err = svc.Send("bk_1", "", "hello")
	require.ErrorAs(t, err, &verr)

	var nferr *ThreadNotFoundError
	_, err = svc.Send("bk_missing", "cust", "hello")
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "bk_missing", nferr.BookingID)
}

func TestThreadOrdering(t *testing.T) {
	svc, bookings := newTestMessaging(t)
	seedBooking(t, bookings, models.Booking{ID: "bk_1", CustomerID: "cust", ProviderID: "prov"})

	base := time.Now()
	for i, content := range []string{"newest", "oldest", "middle"} {
		offset := []time.Duration{2 * time.Minute, 0, time.Minute}[i]
		require.NoError(t, svc.Messages.Append(&models.Message{
			ID: content, BookingID: "bk_1", SenderID: "cust",
			Content: content, Timestamp: base.Add(offset),
		}))
	}

	msgs, err := svc.Thread("bk_1")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "oldest", msgs[0].Content)
	assert.Equal(t, "middle", msgs[1].Content)
	assert.Equal(t, "newest", msgs[2].Content)
}

func TestThreads(t *testing.T) {
	svc, bookings := newTestMessaging(t)
	seedBooking(t, bookings, models.Booking{
		ID: "bk_quiet", CustomerID: "cust", ProviderID: "prov_a",
		ProviderName: "Ahmed Ali", ServiceCategory: "plumbing",
		ScheduledAt: "2024-06-01 10:00 AM",
	})
	seedBooking(t, bookings, models.Booking{
		ID: "bk_active", CustomerID: "cust", ProviderID: "prov_b",
		ProviderName: "Cool Breeze AC", ServiceCategory: "ac_repair",
		ScheduledAt: "2024-05-01 09:00 AM",
	})

	_, err := svc.Send("bk_active", "prov_b", "Technician assigned.")
	require.NoError(t, err)

	threads, err := svc.Threads("cust", models.RoleCustomer)
	require.NoError(t, err)
	require.Len(t, threads, 2)

	// The thread with the recent message sorts first despite the older
	// scheduled date.
	assert.Equal(t, "bk_active", threads[0].BookingID)
	assert.Equal(t, "Cool Breeze AC", threads[0].PartnerName)
	assert.Equal(t, "Technician assigned.", threads[0].LastMessage)
	assert.Equal(t, 1, threads[0].UnreadCount)

	// A quiet thread falls back to its scheduled time and placeholder text.
	assert.Equal(t, "bk_quiet", threads[1].BookingID)
	assert.Equal(t, "Chat started", threads[1].LastMessage)
	scheduled, err := time.Parse("2006-01-02 03:04 PM", "2024-06-01 10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, scheduled.UnixMilli(), threads[1].LastActivity)
	assert.Equal(t, 0, threads[1].UnreadCount)
}

func TestThreadsProviderView(t *testing.T) {
	svc, bookings := newTestMessaging(t)
	seedBooking(t, bookings, models.Booking{
		ID: "bk_1", CustomerID: "cust_12345abc", ProviderID: "prov",
		ServiceCategory: "cleaning",
	})

	threads, err := svc.Threads("prov", models.RoleProvider)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, "cust_12345abc", threads[0].PartnerID)
	// No cached name, so the partner label degrades to a short handle.
	assert.Equal(t, "Customer #cust_", threads[0].PartnerName)
}

func TestWatch(t *testing.T) {
	svc, bookings := newTestMessaging(t)
	seedBooking(t, bookings, models.Booking{ID: "bk_1", CustomerID: "cust", ProviderID: "prov"})

	_, err := svc.Send("bk_1", "prov", "hello")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := svc.Watch(ctx, "bk_1", "cust")
	require.NoError(t, err)

	select {
	case snap := <-ch:
		assert.Equal(t, "bk_1", snap.BookingID)
		require.Len(t, snap.Messages, 1)
		// The opening snapshot already marked the incoming message read.
		assert.True(t, snap.Messages[0].IsRead)
	case <-time.After(time.Second):
		t.Fatal("no opening snapshot delivered")
	}

	cancel()
	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}

	_, err = svc.Watch(context.Background(), "bk_missing", "cust")
	var nferr *ThreadNotFoundError
	require.ErrorAs(t, err, &nferr)
}
