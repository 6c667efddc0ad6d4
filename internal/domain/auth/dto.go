package auth

import (
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/validator"
)

// Identity is what a verified bearer token says about its holder.
type Identity struct {
	ID   string     `json:"id"`
	Role staff.Role `json:"role"`
	Name string     `json:"name"`
}

type LoginRequest struct {
	UserID string `json:"userId"`
	PIN    string `json:"pin"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "PIN must be exactly 4 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    Identity `json:"user"`
}

type SessionResponse struct {
	User      Identity `json:"user"`
	ExpiresAt string   `json:"expiresAt"`
}
