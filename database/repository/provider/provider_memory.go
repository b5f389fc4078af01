package providerRepo

import (
	"fmt"
	"sync"

	"hireme/models"
)

// MemoryProviderRepo is an in-memory ProviderRepository for tests and
// store-less operation.
type MemoryProviderRepo struct {
	mu       sync.RWMutex
	profiles map[string]models.ProviderProfile
	order    []string // preserves insertion order for GetAll
}

// NewMemoryProviderRepo creates an empty in-memory provider repository.
func NewMemoryProviderRepo() *MemoryProviderRepo {
	return &MemoryProviderRepo{profiles: make(map[string]models.ProviderProfile)}
}

func (r *MemoryProviderRepo) GetByID(id string) (*models.ProviderProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.profiles[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *MemoryProviderRepo) GetAll() ([]models.ProviderProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ProviderProfile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.profiles[id])
	}
	return out, nil
}

func (r *MemoryProviderRepo) Upsert(profile *models.ProviderProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.profiles[profile.ID]; !exists {
		r.order = append(r.order, profile.ID)
	}
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *MemoryProviderRepo) SetAggregates(id string, rating float64, reviewCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return fmt.Errorf("provider with id %s not found", id)
	}
	p.Rating = rating
	p.ReviewCount = reviewCount
	r.profiles[id] = p
	return nil
}
