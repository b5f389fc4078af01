package providerRepo

import "hireme/models"

// ProviderRepository defines methods for provider profile data access.
type ProviderRepository interface {
	// GetByID retrieves a provider profile by user id, nil when absent.
	GetByID(id string) (*models.ProviderProfile, error)
	// GetAll retrieves all registered provider profiles.
	GetAll() ([]models.ProviderProfile, error)
	// Upsert inserts or replaces a provider profile.
	Upsert(profile *models.ProviderProfile) error
	// SetAggregates overwrites the rating and review count for a provider.
	// Only the review engine calls this.
	SetAggregates(id string, rating float64, reviewCount int) error
}
