package auth

import (
	"testing"

	"festacconnect_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(secret string) {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig("unit-test-secret")

	token, err := GenerateToken("user-42", "moderator")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "moderator", claims.Role)
	assert.Equal(t, "festacconnect", claims.Issuer)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig("first-secret")
	token, err := GenerateToken("user-1", "user")
	require.NoError(t, err)

	setTestConfig("second-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig("unit-test-secret")
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
