// File: utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "session:"

// Session is the externally cached active-user identity. On startup the
// account is rehydrated from the record store by looking up the cached
// email; the core does not own this cache.
type Session struct {
	UserID        string    `json:"userId"`
	Email         string    `json:"email"`
	Token         string    `json:"token,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SaveSession stores the active session in Redis keyed by email.
func SaveSession(client *redis.Client, session Session) error {
	if client == nil {
		return fmt.Errorf("no session cache configured")
	}
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, sessionPrefix+session.Email, data, 30*24*time.Hour).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves the cached session for an email. Returns nil when no
// session is cached.
func GetSession(client *redis.Client, email string) (*Session, error) {
	if client == nil {
		return nil, nil
	}
	ctx := context.Background()
	data, err := client.Get(ctx, sessionPrefix+email).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes the cached session for an email.
func DeleteSession(client *redis.Client, email string) error {
	if client == nil {
		return nil
	}
	ctx := context.Background()
	return client.Del(ctx, sessionPrefix+email).Err()
}
