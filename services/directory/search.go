package directory

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"hireme/models"
)

// Ranking weights. Score = rating*ratingWeight + log10(reviews+1)*reviewWeight,
// plus locationBoost when the provider's location contains the active
// location term.
const (
	ratingWeight  = 0.7
	reviewWeight  = 0.3
	locationBoost = 3.0
)

// Snapshot returns the merged directory. Registered providers shadow seed
// entries with the same id and sort ahead of them.
func (s *DefaultDirectoryService) Snapshot() ([]models.ProviderProfile, error) {
	stored, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load provider directory: %w", err)
	}

	seen := make(map[string]bool, len(stored))
	merged := make([]models.ProviderProfile, 0, len(stored)+len(s.Seed))
	for _, p := range stored {
		seen[p.ID] = true
		merged = append(merged, p)
	}
	for _, p := range s.Seed {
		if !seen[p.ID] {
			merged = append(merged, p)
		}
	}
	return merged, nil
}

// GetByID resolves one provider from the merged directory.
func (s *DefaultDirectoryService) GetByID(id string) (*models.ProviderProfile, error) {
	stored, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return stored, nil
	}
	for _, p := range s.Seed {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

// Categories returns the service category catalog.
func (s *DefaultDirectoryService) Categories() []models.ServiceCategory {
	return models.Categories()
}

// Search filters the directory snapshot conjunctively, scores the survivors
// and returns them ranked best-first. Ties keep their snapshot order.
func (s *DefaultDirectoryService) Search(criteria SearchCriteria) ([]models.ProviderProfile, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.ProviderProfile, 0, len(snapshot))
	for _, p := range snapshot {
		if matches(p, criteria) {
			filtered = append(filtered, p)
		}
	}

	scores := make(map[string]float64, len(filtered))
	for _, p := range filtered {
		scores[p.ID] = Score(p, criteria)
	}

	// Stable: equal scores keep their relative snapshot order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return scores[filtered[i].ID] > scores[filtered[j].ID]
	})
	return filtered, nil
}

func matches(p models.ProviderProfile, c SearchCriteria) bool {
	if c.Category != "" && !containsString(p.Categories, c.Category) {
		return false
	}
	if c.City != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(c.City)) {
		return false
	}
	if c.Term != "" {
		term := strings.ToLower(c.Term)
		hit := strings.Contains(strings.ToLower(p.FullName), term) ||
			strings.Contains(strings.ToLower(p.Bio), term) ||
			strings.Contains(strings.ToLower(p.Location), term)
		if !hit {
			for _, cat := range p.Categories {
				if strings.Contains(strings.ToLower(cat), term) {
					hit = true
					break
				}
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// Score computes a provider's relevance for the given criteria.
func Score(p models.ProviderProfile, c SearchCriteria) float64 {
	score := p.Rating*ratingWeight + math.Log10(float64(p.ReviewCount)+1)*reviewWeight

	locTerm := c.LocationHint
	if locTerm == "" {
		locTerm = c.Term
	}
	if locTerm != "" && strings.Contains(strings.ToLower(p.Location), strings.ToLower(locTerm)) {
		score += locationBoost
	}
	return score
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
