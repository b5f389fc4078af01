package user

import (
	"hireme/database/repository"
	"hireme/models"

	"github.com/go-redis/redis/v8"
)

// AuthResult carries the signed-in account and its bearer token.
type AuthResult struct {
	User  models.UserProfile `json:"user"`
	Token string             `json:"token"`
}

// UserService manages accounts: registration, sign-in, session rehydration
// and the customer/provider capacity switch.
type UserService interface {
	// Register creates an account and opens a session.
	Register(email, password, fullName string) (*AuthResult, error)
	// Authenticate verifies credentials and opens a session.
	Authenticate(email, password string) (*AuthResult, error)
	// Rehydrate restores the active account from the cached session email.
	Rehydrate(email string) (*models.UserProfile, error)
	// Logout drops the cached session.
	Logout(email string) error
	// BecomeProvider flips the account into provider capacity and creates
	// its provider profile.
	BecomeProvider(userID string, profile models.ProviderProfile) (*models.UserProfile, error)
	// SwitchRole records which capacity the account's view is showing.
	SwitchRole(userID string, role models.Role) (*models.UserProfile, error)
	// Get resolves an account by id.
	Get(userID string) (*models.UserProfile, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo      repository.UserRepository
	Providers repository.ProviderRepository
	Sessions  *redis.Client
}
