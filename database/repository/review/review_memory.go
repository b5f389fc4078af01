package reviewRepo

import (
	"sync"

	"hireme/models"
)

// MemoryReviewRepo is an in-memory ReviewRepository for tests and
// store-less operation.
type MemoryReviewRepo struct {
	mu      sync.RWMutex
	reviews []models.Review
}

// NewMemoryReviewRepo creates an empty in-memory review repository.
func NewMemoryReviewRepo() *MemoryReviewRepo {
	return &MemoryReviewRepo{}
}

func (r *MemoryReviewRepo) ListByProvider(providerID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.ProviderID == providerID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *MemoryReviewRepo) Append(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, *review)
	return nil
}
