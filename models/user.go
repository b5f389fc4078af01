package models

import "time"

// Role identifies the capacity a user is acting in for a given operation.
// A single account can operate in either capacity; the role is passed
// explicitly into each operation rather than read off a mutable flag.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

// Valid reports whether the role is one of the two known capacities.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleProvider
}

// UserProfile represents a registered account.
type UserProfile struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	FullName     string    `bson:"full_name" json:"fullName"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	AvatarURL    string    `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	IsProvider   bool      `bson:"is_provider" json:"isProvider"`   // has a provider profile
	IsAdmin      bool      `bson:"is_admin" json:"isAdmin"`         // granted out of band, never via the API
	CurrentRole  Role      `bson:"current_role" json:"currentRole"` // view selector only
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
