package directory

import (
	"hireme/database/repository"
	"hireme/models"
)

// SearchCriteria narrows and biases a directory search. Empty fields are
// ignored. All matching is conjunctive.
type SearchCriteria struct {
	Category     string `json:"category,omitempty"`     // exact category id
	City         string `json:"city,omitempty"`         // case-insensitive substring of location
	Term         string `json:"term,omitempty"`         // substring across name, bio, category id, location
	LocationHint string `json:"locationHint,omitempty"` // boosts providers whose location contains it
}

// DirectoryService merges provider records, filters, ranks and orders them.
type DirectoryService interface {
	// Search returns the full filtered, ranked provider list. Pure: a
	// function of the criteria and the current directory snapshot.
	Search(criteria SearchCriteria) ([]models.ProviderProfile, error)
	// GetByID resolves one provider from the merged directory, nil when absent.
	GetByID(id string) (*models.ProviderProfile, error)
	// Snapshot returns the merged directory: registered providers first,
	// then seed providers not shadowed by a registered record.
	Snapshot() ([]models.ProviderProfile, error)
	// Categories returns the service category catalog.
	Categories() []models.ServiceCategory
}

// DefaultDirectoryService implements DirectoryService over a provider
// repository plus the built-in seed directory.
type DefaultDirectoryService struct {
	Repo repository.ProviderRepository
	Seed []models.ProviderProfile
}

// NewDefaultDirectoryService wires the standard seed directory.
func NewDefaultDirectoryService(repo repository.ProviderRepository) *DefaultDirectoryService {
	return &DefaultDirectoryService{Repo: repo, Seed: models.SeedProviders()}
}
