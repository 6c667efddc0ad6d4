package auth

import (
	"context"
	"time"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// Logout revokes the token until it would have expired anyway.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	// Session confirms the token holder still has a profile and returns its
	// current identity.
	Session(ctx context.Context, identity Identity) (Identity, error)
	GenerateSSEToken(ctx context.Context, identity Identity) (string, int, error)
	ValidateSSEToken(ctx context.Context, token string) (Identity, error)
}
