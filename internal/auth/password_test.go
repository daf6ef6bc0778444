package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "hunter2"))
	assert.False(t, VerifyPassword(hash, "hunter3"))
}

func TestConstantTimeEquals(t *testing.T) {
	assert.True(t, ConstantTimeEquals("secret", "secret"))
	assert.False(t, ConstantTimeEquals("secret", "Secret"))
	assert.False(t, ConstantTimeEquals("secret", "secret "))
	assert.False(t, ConstantTimeEquals("", "secret"))
}
