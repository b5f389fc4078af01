package userRepo

import "hireme/models"

// UserRepository defines methods for account data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.UserProfile, error)
	// GetByEmail retrieves a user by its email address, nil when absent.
	GetByEmail(email string) (*models.UserProfile, error)
	// Create inserts a new user record.
	Create(user *models.UserProfile) error
	// Update modifies an existing user record.
	Update(user *models.UserProfile) error
}
