package user

import (
	"fmt"
	"strings"
	"time"

	"hireme/models"
	"hireme/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 30 * 24 * time.Hour

// AuthError signals failed registration or sign-in.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Register creates an account and opens a session.
func (svc *DefaultUserService) Register(email, password, fullName string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, &AuthError{Message: "a valid email is required"}
	}
	if len(password) < 6 {
		return nil, &AuthError{Message: "password must be at least 6 characters"}
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, &AuthError{Message: "full name is required"}
	}

	existing, err := svc.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &AuthError{Message: "an account with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.UserProfile{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: string(hash),
		CurrentRole:  models.RoleCustomer,
	}
	if err := svc.Repo.Create(account); err != nil {
		return nil, err
	}

	return svc.openSession(account)
}

// Authenticate verifies credentials and opens a session.
func (svc *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	account, err := svc.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &AuthError{Message: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, &AuthError{Message: "invalid email or password"}
	}
	return svc.openSession(account)
}

// Rehydrate restores the active account from the cached session email. A
// stale cache entry with no backing account yields nil.
func (svc *DefaultUserService) Rehydrate(email string) (*models.UserProfile, error) {
	session, err := utils.GetSession(svc.Sessions, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return svc.Repo.GetByEmail(session.Email)
}

// Logout drops the cached session.
func (svc *DefaultUserService) Logout(email string) error {
	return utils.DeleteSession(svc.Sessions, strings.ToLower(email))
}

// Get resolves an account by id.
func (svc *DefaultUserService) Get(userID string) (*models.UserProfile, error) {
	return svc.Repo.GetByID(userID)
}

func (svc *DefaultUserService) openSession(account *models.UserProfile) (*AuthResult, error) {
	token, err := utils.GenerateToken(account.ID, account.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	session := utils.Session{
		UserID:    account.ID,
		Email:     account.Email,
		Token:     utils.HashToken(token),
		CreatedAt: time.Now(),
	}
	if err := utils.SaveSession(svc.Sessions, session); err != nil {
		utils.GetLogger().Warn("failed to cache session", zap.String("email", account.Email), zap.Error(err))
	}
	return &AuthResult{User: *account, Token: token}, nil
}
