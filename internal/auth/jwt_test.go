package auth

import (
	"testing"

	"referral-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "referral-backend"
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig("test-secret"))

	token, err := m.GenerateToken("admin@notprofi24.at")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@notprofi24.at", claims.Email)
	assert.Equal(t, "referral-backend", claims.Issuer)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager(testConfig("test-secret"))
	other := NewJWTManager(testConfig("other-secret"))

	token, err := m.GenerateToken("admin@notprofi24.at")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	m := NewJWTManager(testConfig("test-secret"))

	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)
}
