package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type identityKey struct{}

// IdentityFromContext returns the caller set by AuthRequired or OptionalAuth.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(auth.Identity)
	return identity, ok
}

func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// identify checks the token jwtauth.Verifier left in the request context.
func identify(r *http.Request, jwtService jwt.Service) (auth.Identity, error) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != jwt.TokenTypeAccess {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	if jwtService.IsTokenRevoked(token.JwtID()) {
		return auth.Identity{}, auth.ErrTokenRevoked
	}

	c, err := jwt.ClaimsFromMap(claims)
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	return auth.Identity{ID: c.ID, Role: staff.Role(c.Role), Name: c.Name}, nil
}

func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			identity, err := identify(r, jwtService)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		}
		return http.HandlerFunc(hfn)
	}
}

// OptionalAuth attaches the caller when a valid access token is present and
// lets anonymous requests through untouched.
func OptionalAuth(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if identity, err := identify(r, jwtService); err == nil {
				r = r.WithContext(WithIdentity(r.Context(), identity))
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
