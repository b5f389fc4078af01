package booking

import (
	"hireme/database/repository"
	"hireme/models"
	"hireme/services/directory"
)

// CreateRequest carries the inputs for a new booking.
type CreateRequest struct {
	CustomerID  string `json:"customerId"`
	ProviderID  string `json:"providerId"`
	ScheduledAt string `json:"scheduledAt"`
	Address     string `json:"address,omitempty"`
}

// Earnings summarizes a provider's completed revenue and pending payouts.
type Earnings struct {
	CompletedJobs    int     `json:"completedJobs"`
	CompletedRevenue float64 `json:"completedRevenue"`
	PendingPayout    float64 `json:"pendingPayout"`
}

// BookingService is the booking lifecycle engine: it creates bookings,
// enforces status transitions, emits a system message on every transition
// and computes derived pricing.
type BookingService interface {
	// Create persists a new PENDING booking and synthesizes its creation
	// system message.
	Create(req CreateRequest) (*models.Booking, error)
	// Get resolves a booking by id.
	Get(bookingID string) (*models.Booking, error)
	// ListForUser returns the bookings a user sees in the given capacity.
	ListForUser(userID string, actingAs models.Role) ([]models.Booking, error)
	// UpdateStatus applies a transition from the allowed graph on behalf of
	// the acting role, then synthesizes a status system message.
	UpdateStatus(bookingID string, newStatus models.BookingStatus, actor models.Role) (*models.Booking, error)
	// ForceStatus overwrites the status without consulting the transition
	// table. Admin override path; the only way into DISPUTED.
	ForceStatus(bookingID string, newStatus models.BookingStatus) (*models.Booking, error)
	// Invoice computes the fee/total breakdown for a booking.
	Invoice(bookingID string) (*models.Invoice, error)
	// Earnings summarizes a provider's booking revenue.
	Earnings(providerID string) (*Earnings, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      repository.BookingRepository
	Messages  repository.MessageRepository
	Users     repository.UserRepository
	Directory directory.DirectoryService
}
