package bookingRepo

import (
	"sync"
	"time"

	"hireme/models"
)

// MemoryBookingRepo is an in-memory BookingRepository for tests and
// store-less operation.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking // newest first
}

// NewMemoryBookingRepo creates an empty in-memory booking repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

func (r *MemoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryBookingRepo) GetAll() ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *MemoryBookingRepo) listBy(match func(models.Booking) bool) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if match(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	return r.listBy(func(b models.Booking) bool { return b.CustomerID == customerID })
}

func (r *MemoryBookingRepo) ListByProvider(providerID string) ([]models.Booking, error) {
	return r.listBy(func(b models.Booking) bool { return b.ProviderID == providerID })
}

func (r *MemoryBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking.CreatedAt = time.Now()
	// Newest first, matching the Mongo sort order.
	r.bookings = append([]models.Booking{*booking}, r.bookings...)
	return nil
}

func (r *MemoryBookingRepo) UpdateStatus(id string, status models.BookingStatus, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			if r.bookings[i].Version != expectedVersion {
				return ErrVersionConflict
			}
			r.bookings[i].Status = status
			r.bookings[i].Version++
			return nil
		}
	}
	return ErrNotFound
}
