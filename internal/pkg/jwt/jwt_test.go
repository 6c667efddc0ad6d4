package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var john = Claims{ID: "user-foh-002", Role: "FOH", Name: "John Doe"}

func TestGenerateAccessToken_CarriesIdentity(t *testing.T) {
	svc := NewJWTService("test-secret", "8h")

	token, expiresAt, err := svc.GenerateAccessToken(john)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), expiresAt, 5*time.Second)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)
	assert.NotEmpty(t, decoded.JwtID())

	claims, err := ClaimsFromMap(decoded.PrivateClaims())
	require.NoError(t, err)
	assert.Equal(t, john, claims)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, TokenTypeAccess, tokenType)
}

func TestNewJWTService_BadDurationFallsBack(t *testing.T) {
	svc := NewJWTService("test-secret", "soon")
	assert.Equal(t, 8*time.Hour, svc.accessTokenLifetime)
}

func TestSSEToken(t *testing.T) {
	svc := NewJWTService("test-secret", "8h")

	token, expiresIn, err := svc.GenerateSSEToken(john)
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	claims, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, john.ID, claims.ID)

	access, _, err := svc.GenerateAccessToken(john)
	require.NoError(t, err)
	_, err = svc.ValidateSSEToken(access)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	other := NewJWTService("other-secret", "8h")
	_, err = other.ValidateSSEToken(token)
	assert.Error(t, err)
}

func TestRevocation(t *testing.T) {
	svc := NewJWTService("test-secret", "8h")
	now := time.Now()

	svc.RevokeToken("a", now.Add(-time.Minute))
	svc.RevokeToken("b", now.Add(time.Hour))
	svc.RevokeToken("", now.Add(time.Hour))

	assert.True(t, svc.IsTokenRevoked("a"))
	assert.True(t, svc.IsTokenRevoked("b"))
	assert.False(t, svc.IsTokenRevoked(""))

	assert.Equal(t, 1, svc.PurgeExpiredRevocations(now))
	assert.False(t, svc.IsTokenRevoked("a"))
	assert.True(t, svc.IsTokenRevoked("b"))
}
