package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
	SSEToken(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Login successful", "user_id", resp.User.ID, "role", resp.User.Role)
	response.Success(w, resp)
}

// Logout revokes the bearer token presented with the request.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := a.authService.Logout(r.Context(), token.JwtID(), token.Expiration()); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out")
}

// Session confirms a still-valid token belongs to an existing profile so the
// client can resume without asking for the PIN again.
func (a *AuthHandlerImpl) Session(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	current, err := a.authService.Session(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	token, _, _ := jwtauth.FromContext(r.Context())
	resp := auth.SessionResponse{User: current}
	if token != nil {
		resp.ExpiresAt = token.Expiration().UTC().Format(time.RFC3339)
	}
	response.Success(w, resp)
}

// SSEToken generates a short-lived token for the event stream, which cannot
// carry an Authorization header.
func (a *AuthHandlerImpl) SSEToken(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	token, expiresIn, err := a.authService.GenerateSSEToken(r.Context(), identity)
	if err != nil {
		slog.Error("SSEToken service error", "error", err)
		response.InternalServerError(w, "Failed to generate SSE token")
		return
	}

	response.Success(w, notification.SSETokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}
