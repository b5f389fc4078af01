package booking

import (
	"math"

	"hireme/models"
)

// Platform pricing. The fee and the displayed total are each rounded
// independently from the base price; for some inputs total differs from
// base+fee by one unit. Both the invoice and the in-app summary use this
// same pair of formulas.
const platformFeeRate = 0.10

// PlatformFee returns the rounded platform fee for a base price.
func PlatformFee(basePrice float64) float64 {
	return math.Round(basePrice * platformFeeRate)
}

// TotalWithFee returns the rounded customer-facing total for a base price.
func TotalWithFee(basePrice float64) float64 {
	return math.Round(basePrice * (1 + platformFeeRate))
}

// Quote builds the price breakdown for a base price.
func Quote(bookingID string, basePrice float64) models.Invoice {
	return models.Invoice{
		BookingID:   bookingID,
		BasePrice:   basePrice,
		PlatformFee: PlatformFee(basePrice),
		Total:       TotalWithFee(basePrice),
	}
}
