package booking

import (
	"errors"
	"fmt"
	"time"

	bookingRepo "hireme/database/repository/booking"
	"hireme/models"
	"hireme/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UnknownProviderName is cached on bookings whose provider cannot be
// resolved from the directory at creation time.
const UnknownProviderName = "Unknown Provider"

// Create resolves the provider, prices the booking at the provider's hourly
// rate, persists it as PENDING and synthesizes the creation system message.
func (svc *DefaultBookingService) Create(req CreateRequest) (*models.Booking, error) {
	if req.CustomerID == "" {
		return nil, &ValidationError{Field: "customerId", Message: "must not be empty"}
	}
	if req.ProviderID == "" {
		return nil, &ValidationError{Field: "providerId", Message: "must not be empty"}
	}
	if req.ScheduledAt == "" {
		return nil, &ValidationError{Field: "scheduledAt", Message: "must not be empty"}
	}

	providerName := UnknownProviderName
	serviceCategory := "general"
	totalPrice := 0.0
	provider, err := svc.Directory.GetByID(req.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider %s: %w", req.ProviderID, err)
	}
	if provider != nil {
		providerName = provider.FullName
		serviceCategory = provider.PrimaryCategory()
		totalPrice = provider.HourlyRate
	}

	customerName := ""
	address := req.Address
	customer, err := svc.Users.GetByID(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer %s: %w", req.CustomerID, err)
	}
	if customer != nil {
		customerName = customer.FullName
		if address == "" {
			address = customer.Location
		}
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		CustomerID:      req.CustomerID,
		CustomerName:    customerName,
		ProviderID:      req.ProviderID,
		ProviderName:    providerName,
		ServiceCategory: serviceCategory,
		Status:          models.StatusPending,
		ScheduledAt:     req.ScheduledAt,
		TotalPrice:      totalPrice,
		Address:         address,
	}
	if err := svc.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	content := fmt.Sprintf("Booking created for %s on %s.", booking.ServiceCategory, booking.ScheduledAt)
	svc.appendSystemMessage(booking.ID, content)

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("providerID", booking.ProviderID),
		zap.Float64("totalPrice", booking.TotalPrice))
	return booking, nil
}

// Get resolves a booking by id.
func (svc *DefaultBookingService) Get(bookingID string) (*models.Booking, error) {
	b, err := svc.Repo.GetByID(bookingID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, &NotFoundError{BookingID: bookingID}
	}
	return b, err
}

// ListForUser returns the bookings a user sees in the given capacity.
func (svc *DefaultBookingService) ListForUser(userID string, actingAs models.Role) ([]models.Booking, error) {
	if actingAs == models.RoleProvider {
		return svc.Repo.ListByProvider(userID)
	}
	return svc.Repo.ListByCustomer(userID)
}

// UpdateStatus applies a transition from the allowed graph. A missing
// booking is an explicit NotFoundError, never a silent no-op.
func (svc *DefaultBookingService) UpdateStatus(bookingID string, newStatus models.BookingStatus, actor models.Role) (*models.Booking, error) {
	if !newStatus.Known() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", newStatus)}
	}
	current, err := svc.Get(bookingID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, newStatus, actor) {
		return nil, &InvalidTransitionError{From: current.Status, To: newStatus, Actor: actor}
	}
	return svc.applyStatus(current, newStatus)
}

// ForceStatus overwrites the status without consulting the transition table.
func (svc *DefaultBookingService) ForceStatus(bookingID string, newStatus models.BookingStatus) (*models.Booking, error) {
	if !newStatus.Known() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", newStatus)}
	}
	current, err := svc.Get(bookingID)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Warn("forced status override",
		zap.String("bookingID", bookingID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(newStatus)))
	return svc.applyStatus(current, newStatus)
}

// applyStatus performs the versioned write and emits the status message.
func (svc *DefaultBookingService) applyStatus(current *models.Booking, newStatus models.BookingStatus) (*models.Booking, error) {
	err := svc.Repo.UpdateStatus(current.ID, newStatus, current.Version)
	switch {
	case errors.Is(err, bookingRepo.ErrNotFound):
		return nil, &NotFoundError{BookingID: current.ID}
	case errors.Is(err, bookingRepo.ErrVersionConflict):
		return nil, &ConflictError{BookingID: current.ID}
	case err != nil:
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	svc.appendSystemMessage(current.ID, fmt.Sprintf("Booking status updated to: %s", newStatus))

	updated := *current
	updated.Status = newStatus
	updated.Version++
	return &updated, nil
}

// Invoice computes the fee/total breakdown for a booking.
func (svc *DefaultBookingService) Invoice(bookingID string) (*models.Invoice, error) {
	b, err := svc.Get(bookingID)
	if err != nil {
		return nil, err
	}
	inv := Quote(b.ID, b.TotalPrice)
	return &inv, nil
}

// Earnings summarizes a provider's booking revenue: completed jobs plus the
// payout still pending on in-progress work.
func (svc *DefaultBookingService) Earnings(providerID string) (*Earnings, error) {
	bookings, err := svc.Repo.ListByProvider(providerID)
	if err != nil {
		return nil, err
	}
	out := &Earnings{}
	for _, b := range bookings {
		switch b.Status {
		case models.StatusCompleted:
			out.CompletedJobs++
			out.CompletedRevenue += b.TotalPrice
		case models.StatusInProgress:
			out.PendingPayout += b.TotalPrice
		}
	}
	return out, nil
}

// appendSystemMessage synthesizes a lifecycle chat entry. A failed append is
// logged, not surfaced: the state change itself already committed.
func (svc *DefaultBookingService) appendSystemMessage(bookingID, content string) {
	msg := &models.Message{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		SenderID:  models.SystemSenderID,
		Content:   content,
		Timestamp: time.Now(),
		IsRead:    false,
	}
	if err := svc.Messages.Append(msg); err != nil {
		utils.GetLogger().Error("failed to append system message",
			zap.String("bookingID", bookingID), zap.Error(err))
	}
}
