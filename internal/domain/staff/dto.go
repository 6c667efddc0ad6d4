package staff

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PublicProfile is what the sign-in screen sees: no wage, no PIN material.
type PublicProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Icon   string `json:"icon"`
	Role   string `json:"role"`
}

// FullProfile adds wage and bookkeeping fields for admin views.
type FullProfile struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Gender    string          `json:"gender"`
	Icon      string          `json:"icon"`
	Role      string          `json:"role"`
	Wage      decimal.Decimal `json:"wage"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

func ToPublicProfile(p Profile) PublicProfile {
	return PublicProfile{
		ID:     p.ID,
		Name:   p.Name,
		Gender: string(p.Gender),
		Icon:   p.Icon,
		Role:   string(p.Role),
	}
}

func ToFullProfile(p Profile) FullProfile {
	return FullProfile{
		ID:        p.ID,
		Name:      p.Name,
		Gender:    string(p.Gender),
		Icon:      p.Icon,
		Role:      string(p.Role),
		Wage:      p.Wage.Round(2),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

// CreateStaffRequest represents request to create a new staff profile
type CreateStaffRequest struct {
	Name   string           `json:"name"`
	Gender string           `json:"gender"`
	Role   string           `json:"role"`
	Wage   *decimal.Decimal `json:"wage"`
}

func (r *CreateStaffRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validateProfileFields(r.Name, r.Gender, r.Role, r.Wage)
}

// UpdateStaffRequest replaces every mutable field of a profile.
type UpdateStaffRequest struct {
	Name   string           `json:"name"`
	Gender string           `json:"gender"`
	Role   string           `json:"role"`
	Wage   *decimal.Decimal `json:"wage"`
}

func (r *UpdateStaffRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validateProfileFields(r.Name, r.Gender, r.Role, r.Wage)
}

func validateProfileFields(name, gender, role string, wage *decimal.Decimal) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(gender) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender is required",
		})
	} else if !validator.IsInSlice(gender, GenderValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of male, female, other",
		})
	}

	if validator.IsEmpty(role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !validator.IsInSlice(role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "invalid role",
		})
	}

	if wage == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "wage",
			Message: "wage is required",
		})
	} else if wage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "wage",
			Message: "wage must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ChangePINRequest is the self-service PIN change.
type ChangePINRequest struct {
	CurrentPIN string `json:"currentPin"`
	NewPIN     string `json:"newPin"`
}

func (r *ChangePINRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "currentPin",
			Message: "currentPin is required",
		})
	}

	if !validator.IsValidPIN(r.NewPIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "newPin",
			Message: "New PIN must be exactly 4 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateStaffResponse struct {
	Message string        `json:"message"`
	User    PublicProfile `json:"user"`
}

type ResetPINResponse struct {
	Message string `json:"message"`
	NewPIN  string `json:"newPin"`
}
