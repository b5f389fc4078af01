package reviewRepo

import "hireme/models"

// ReviewRepository defines methods for review data access. Reviews are
// append-only and never mutated.
type ReviewRepository interface {
	// ListByProvider retrieves stored reviews for a provider.
	ListByProvider(providerID string) ([]models.Review, error)
	// Append inserts a new review record.
	Append(review *models.Review) error
}
