package holiday

import (
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/validator"
)

// SubmitRequest opens a pending holiday request for the caller.
type SubmitRequest struct {
	StaffID   string `json:"-"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staffId",
			Message: "staffId is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: ErrInvalidDateInput.Error(),
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: ErrInvalidDateInput.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DecideRequest approves or denies a pending request.
type DecideRequest struct {
	RequestID int64  `json:"-"`
	DeciderID string `json:"-"`
	Status    string `json:"status"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RequestID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}

	if !validator.IsInSlice(r.Status, DecisionValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidDecision.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID        int64   `json:"id"`
	StaffID   string  `json:"staffId"`
	StaffName string  `json:"staffName"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Days      int     `json:"days"`
	Status    string  `json:"status"`
	DecidedBy *string `json:"decidedBy,omitempty"`
	DecidedAt *string `json:"decidedAt,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

func ToRequestResponse(r Request, dir staff.Directory) RequestResponse {
	resp := RequestResponse{
		ID:        r.ID,
		StaffID:   r.StaffID,
		StaffName: dir.Name(r.StaffID),
		StartDate: r.StartDate.Format("2006-01-02"),
		EndDate:   r.EndDate.Format("2006-01-02"),
		Days:      r.Days(),
		Status:    string(r.Status),
		DecidedBy: r.DecidedBy,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.DecidedAt != nil {
		decidedAt := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}
