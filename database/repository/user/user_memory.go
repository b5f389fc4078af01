package userRepo

import (
	"strings"
	"sync"
	"time"

	"hireme/models"
)

// MemoryUserRepo is an in-memory UserRepository for tests and store-less
// operation. The production implementation is MongoUserRepo.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]models.UserProfile
}

// NewMemoryUserRepo creates an empty in-memory user repository.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]models.UserProfile)}
}

func (r *MemoryUserRepo) GetByID(id string) (*models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *MemoryUserRepo) GetByEmail(email string) (*models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) Create(user *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepo) Update(user *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}
