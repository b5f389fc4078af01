package bookingRepo

import (
	"errors"

	"hireme/models"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// ErrVersionConflict is returned when a status write loses a race: the
// booking exists but its version stamp no longer matches the caller's.
var ErrVersionConflict = errors.New("booking version conflict")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by id, ErrNotFound when absent.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings, newest first.
	GetAll() ([]models.Booking, error)
	// ListByCustomer retrieves bookings where the user is the customer.
	ListByCustomer(customerID string) ([]models.Booking, error)
	// ListByProvider retrieves bookings where the user is the provider.
	ListByProvider(providerID string) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// UpdateStatus writes a new status if and only if the stored version
	// still equals expectedVersion, then increments the version. Returns
	// ErrNotFound or ErrVersionConflict otherwise.
	UpdateStatus(id string, status models.BookingStatus, expectedVersion int64) error
}
