package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("ops", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := parsed.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ops", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("secret", "forever")

	_, _, err := svc.GenerateAccessToken("ops", "admin")
	assert.Error(t, err)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "1h")
	verifier := NewJWTService("secret-b", "1h")

	token, _, err := issuer.GenerateAccessToken("ops", "admin")
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifier.JWTAuth(), token)
	assert.Error(t, err)
}
