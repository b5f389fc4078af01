package models

// ServiceCategory describes one bookable category of home service.
type ServiceCategory struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Icon        string `bson:"icon" json:"icon"`
	Description string `bson:"description" json:"description"`
}

// Invoice is the customer-facing price breakdown for a booking. The fee and
// total are each rounded independently from the base price; they are not
// guaranteed to satisfy total == base + fee for every input.
type Invoice struct {
	BookingID   string  `json:"bookingId"`
	BasePrice   float64 `json:"basePrice"`
	PlatformFee float64 `json:"platformFee"`
	Total       float64 `json:"total"`
}
