package user

import (
	"testing"

	providerRepo "hireme/database/repository/provider"
	userRepo "hireme/database/repository/user"
	"hireme/models"
	"hireme/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T) (*DefaultUserService, *providerRepo.MemoryProviderRepo) {
	t.Helper()
	providers := providerRepo.NewMemoryProviderRepo()
	svc := &DefaultUserService{
		Repo:      userRepo.NewMemoryUserRepo(),
		Providers: providers,
	}
	return svc, providers
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := newTestUserService(t)

	res, err := svc.Register("Amna@Example.com", "secret123", "Amna Khan")
	require.NoError(t, err)
	assert.Equal(t, "amna@example.com", res.User.Email)
	assert.Equal(t, "Amna Khan", res.User.FullName)
	assert.Equal(t, models.RoleCustomer, res.User.CurrentRole)
	assert.False(t, res.User.IsProvider)
	assert.NotEmpty(t, res.Token)

	token, err := utils.ValidateToken(res.Token)
	require.NoError(t, err)
	subject, email, err := utils.SubjectFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, subject)
	assert.Equal(t, "amna@example.com", email)

	signin, err := svc.Authenticate("amna@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, signin.User.ID)

	var aerr *AuthError
	_, err = svc.Authenticate("amna@example.com", "wrongpass")
	require.ErrorAs(t, err, &aerr)
	_, err = svc.Authenticate("nobody@example.com", "secret123")
	require.ErrorAs(t, err, &aerr)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestUserService(t)

	var aerr *AuthError
	_, err := svc.Register("not-an-email", "secret123", "Amna Khan")
	require.ErrorAs(t, err, &aerr)
	_, err = svc.Register("amna@example.com", "short", "Amna Khan")
	require.ErrorAs(t, err, &aerr)
	_, err = svc.Register("amna@example.com", "secret123", "   ")
	require.ErrorAs(t, err, &aerr)

	_, err = svc.Register("amna@example.com", "secret123", "Amna Khan")
	require.NoError(t, err)
	// Duplicate email, case-insensitively.
	_, err = svc.Register("AMNA@example.com", "secret456", "Other Person")
	require.ErrorAs(t, err, &aerr)
}

func TestBecomeProvider(t *testing.T) {
	svc, providers := newTestUserService(t)
	res, err := svc.Register("bilal@example.com", "secret123", "Bilal Ahmed")
	require.NoError(t, err)

	var aerr *AuthError
	_, err = svc.BecomeProvider(res.User.ID, models.ProviderProfile{})
	require.ErrorAs(t, err, &aerr)

	account, err := svc.BecomeProvider(res.User.ID, models.ProviderProfile{
		Bio:        "Emergency electrician.",
		HourlyRate: 2000,
		Categories: []string{"electrical"},
		Location:   "Clifton, Karachi",
	})
	require.NoError(t, err)
	assert.True(t, account.IsProvider)
	assert.Equal(t, models.RoleProvider, account.CurrentRole)

	profile, err := providers.GetByID(res.User.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	// The profile shares the account's id and name.
	assert.Equal(t, res.User.ID, profile.ID)
	assert.Equal(t, "Bilal Ahmed", profile.FullName)
	assert.NotEmpty(t, profile.JoinedAt)

	_, err = svc.BecomeProvider("missing", models.ProviderProfile{Categories: []string{"cleaning"}})
	require.ErrorAs(t, err, &aerr)
}

func TestSwitchRole(t *testing.T) {
	svc, _ := newTestUserService(t)
	res, err := svc.Register("sana@example.com", "secret123", "Sana")
	require.NoError(t, err)

	var aerr *AuthError
	// No provider profile yet.
	_, err = svc.SwitchRole(res.User.ID, models.RoleProvider)
	require.ErrorAs(t, err, &aerr)

	_, err = svc.SwitchRole(res.User.ID, models.Role("admin"))
	require.ErrorAs(t, err, &aerr)

	_, err = svc.BecomeProvider(res.User.ID, models.ProviderProfile{Categories: []string{"cleaning"}})
	require.NoError(t, err)

	account, err := svc.SwitchRole(res.User.ID, models.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, account.CurrentRole)
	// Staying a provider is about capability, not the current view.
	assert.True(t, account.IsProvider)

	account, err = svc.SwitchRole(res.User.ID, models.RoleProvider)
	require.NoError(t, err)
	assert.Equal(t, models.RoleProvider, account.CurrentRole)
}
