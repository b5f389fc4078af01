package user

import (
	"fmt"
	"time"

	"hireme/models"
)

// BecomeProvider flips the account into provider capacity and creates its
// provider profile. The profile is keyed by the user id; the account stays
// a single account operating in either capacity.
func (svc *DefaultUserService) BecomeProvider(userID string, profile models.ProviderProfile) (*models.UserProfile, error) {
	account, err := svc.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &AuthError{Message: fmt.Sprintf("no account with id %s", userID)}
	}

	profile.ID = account.ID
	profile.FullName = account.FullName
	if profile.JoinedAt == "" {
		profile.JoinedAt = time.Now().Format("2006-01-02")
	}
	if len(profile.Categories) == 0 {
		return nil, &AuthError{Message: "a provider profile needs at least one category"}
	}
	if err := svc.Providers.Upsert(&profile); err != nil {
		return nil, err
	}

	account.IsProvider = true
	account.CurrentRole = models.RoleProvider
	if err := svc.Repo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

// SwitchRole records which capacity the account's view is showing. The flag
// is a view selector only; operations always receive the acting role
// explicitly.
func (svc *DefaultUserService) SwitchRole(userID string, role models.Role) (*models.UserProfile, error) {
	if !role.Valid() {
		return nil, &AuthError{Message: fmt.Sprintf("unknown role %q", role)}
	}
	account, err := svc.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &AuthError{Message: fmt.Sprintf("no account with id %s", userID)}
	}
	if role == models.RoleProvider && !account.IsProvider {
		return nil, &AuthError{Message: "account has no provider profile"}
	}
	account.CurrentRole = role
	if err := svc.Repo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}
