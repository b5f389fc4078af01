package utils

import (
	"testing"
	"time"

	"hireme/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	signed, err := GenerateToken("user_1", "amna@example.com", time.Hour)
	require.NoError(t, err)

	token, err := ValidateToken(signed)
	require.NoError(t, err)
	subject, email, err := SubjectFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", subject)
	assert.Equal(t, "amna@example.com", email)
}

func TestConfiguredSecretHonored(t *testing.T) {
	config.AppConfig.JWTSecret = "configured-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	signed, err := GenerateToken("user_1", "amna@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	require.NoError(t, err)

	// A token minted under one secret fails under another.
	config.AppConfig.JWTSecret = "rotated-secret"
	_, err = ValidateToken(signed)
	assert.Error(t, err)
}
