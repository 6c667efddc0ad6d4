package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	staffService staff.StaffService
	jwtService   jwt.Service
}

func NewAuthService(staffService staff.StaffService, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		staffService: staffService,
		jwtService:   jwtService,
	}
}

// Login exchanges a staff id and PIN for an access token. Malformed input,
// unknown ids and wrong PINs are indistinguishable to the caller.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		slog.Info("Login rejected", "user_id", req.UserID, "reason", err.Error())
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	profile, err := a.staffService.Authenticate(ctx, req.UserID, req.PIN)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) || errors.Is(err, staff.ErrIncorrectPIN) {
			slog.Info("Login rejected", "user_id", req.UserID)
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	identity := auth.Identity{ID: profile.ID, Role: profile.Role, Name: profile.Name}
	token, _, err := a.jwtService.GenerateAccessToken(ToClaims(identity))
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    identity,
	}, nil
}

func (a *AuthServiceImpl) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return auth.ErrInvalidToken
	}
	a.jwtService.RevokeToken(jti, expiresAt)
	return nil
}

func (a *AuthServiceImpl) Session(ctx context.Context, identity auth.Identity) (auth.Identity, error) {
	profile, err := a.staffService.GetByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return auth.Identity{}, auth.ErrInvalidToken
		}
		return auth.Identity{}, err
	}
	return auth.Identity{ID: profile.ID, Role: profile.Role, Name: profile.Name}, nil
}

func (a *AuthServiceImpl) GenerateSSEToken(ctx context.Context, identity auth.Identity) (string, int, error) {
	return a.jwtService.GenerateSSEToken(ToClaims(identity))
}

// ValidateSSEToken also rejects tokens of staff deleted since issue.
func (a *AuthServiceImpl) ValidateSSEToken(ctx context.Context, token string) (auth.Identity, error) {
	claims, err := a.jwtService.ValidateSSEToken(token)
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	if _, err := a.staffService.GetByID(ctx, claims.ID); err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return auth.Identity{}, auth.ErrInvalidToken
		}
		return auth.Identity{}, err
	}
	return FromClaims(claims), nil
}

func ToClaims(identity auth.Identity) jwt.Claims {
	return jwt.Claims{ID: identity.ID, Role: string(identity.Role), Name: identity.Name}
}

func FromClaims(claims jwt.Claims) auth.Identity {
	return auth.Identity{ID: claims.ID, Role: staff.Role(claims.Role), Name: claims.Name}
}
