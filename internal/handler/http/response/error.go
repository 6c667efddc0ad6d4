package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/availability"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/rota"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.First(), validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenRevoked),
		errors.Is(err, jwt.ErrWrongTokenType):
		Unauthorized(w, err.Error())

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, staff.ErrDuplicateName):
		Conflict(w, err.Error())
	case errors.Is(err, staff.ErrIncorrectPIN),
		errors.Is(err, staff.ErrOwnerCannotBeDeleted),
		errors.Is(err, staff.ErrOwnerRoleLocked),
		errors.Is(err, staff.ErrOwnerAccessRequired),
		errors.Is(err, staff.ErrInsufficientPermission):
		Forbidden(w, err.Error())

	// Rota domain errors
	case errors.Is(err, rota.ErrShiftNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, rota.ErrInvalidTimeRange),
		errors.Is(err, rota.ErrInvalidDayKey),
		errors.Is(err, rota.ErrInvalidDateRange),
		errors.Is(err, rota.ErrDateRangeTooLarge),
		errors.Is(err, rota.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)

	// Availability domain errors
	case errors.Is(err, availability.ErrInvalidTag),
		errors.Is(err, availability.ErrInvalidDayKey):
		BadRequest(w, err.Error(), nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrRequestNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, holiday.ErrInvalidState):
		Conflict(w, err.Error())
	case errors.Is(err, holiday.ErrInvalidRange),
		errors.Is(err, holiday.ErrInvalidDecision),
		errors.Is(err, holiday.ErrInvalidDateInput):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidWeek):
		BadRequest(w, err.Error(), nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, err.Error())

	case database.IsConnectionError(err):
		slog.Error("storage unavailable", "error", err)
		ServiceUnavailable(w, "Service temporarily unavailable, please try again")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
