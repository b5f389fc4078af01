package messageRepo

import (
	"sort"
	"sync"

	"hireme/models"
)

// MemoryMessageRepo is an in-memory MessageRepository for tests and
// store-less operation.
type MemoryMessageRepo struct {
	mu       sync.RWMutex
	messages []models.Message
}

// NewMemoryMessageRepo creates an empty in-memory message repository.
func NewMemoryMessageRepo() *MemoryMessageRepo {
	return &MemoryMessageRepo{}
}

func (r *MemoryMessageRepo) ListByBooking(bookingID string) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Message
	for _, m := range r.messages {
		if m.BookingID == bookingID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *MemoryMessageRepo) Append(message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *message)
	return nil
}

func (r *MemoryMessageRepo) MarkRead(bookingID, readerID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	marked := 0
	for i := range r.messages {
		m := &r.messages[i]
		if m.BookingID == bookingID && m.SenderID != readerID && !m.IsRead {
			m.IsRead = true
			marked++
		}
	}
	return marked, nil
}
