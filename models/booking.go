package models

import "time"

// BookingStatus is a booking's stage in its fulfillment workflow.
type BookingStatus string

const (
	StatusPending    BookingStatus = "PENDING"
	StatusAccepted   BookingStatus = "ACCEPTED"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
	// StatusDisputed is reserved in the status vocabulary. No standard
	// transition reaches it; only a forced override can set it.
	StatusDisputed BookingStatus = "DISPUTED"
)

// Known reports whether the status is part of the vocabulary.
func (s BookingStatus) Known() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusDisputed:
		return true
	}
	return false
}

// Terminal reports whether the booking can never leave this status through
// the standard transition table.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Booking is a single requested/accepted/fulfilled service engagement
// between one customer and one provider. Created once; after creation only
// Status (and the Version stamp guarding it) mutate.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	CustomerID      string        `bson:"customer_id" json:"customerId"`
	CustomerName    string        `bson:"customer_name" json:"customerName"` // cached for display
	ProviderID      string        `bson:"provider_id" json:"providerId"`
	ProviderName    string        `bson:"provider_name" json:"providerName"` // cached for display
	ServiceCategory string        `bson:"service_category" json:"serviceCategory"`
	Status          BookingStatus `bson:"status" json:"status"`
	ScheduledAt     string        `bson:"scheduled_at" json:"scheduledAt"` // e.g. "2024-01-01 10:00 AM"
	TotalPrice      float64       `bson:"total_price" json:"totalPrice"`
	Address         string        `bson:"address,omitempty" json:"address,omitempty"`
	Version         int64         `bson:"version" json:"version"` // optimistic concurrency stamp
	CreatedAt       time.Time     `bson:"created_at" json:"createdAt"`
}
