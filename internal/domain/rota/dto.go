package rota

import (
	"strings"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/timeutil"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/validator"
)

// AssignShiftRequest puts a staff member on the rota for a day.
type AssignShiftRequest struct {
	DayKey    string `json:"-"`
	StaffID   string `json:"staffId"`
	TimeRange string `json:"timeRange"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.DayKey); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "dayKey",
			Message: ErrInvalidDayKey.Error(),
		})
	}

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staffId",
			Message: "staffId is required",
		})
	}

	r.TimeRange = strings.ReplaceAll(r.TimeRange, " ", "")
	if validator.IsEmpty(r.TimeRange) {
		errs = append(errs, validator.ValidationError{
			Field:   "timeRange",
			Message: "timeRange is required",
		})
	} else if !timeutil.IsValidTimeRange(r.TimeRange) {
		errs = append(errs, validator.ValidationError{
			Field:   "timeRange",
			Message: ErrInvalidTimeRange.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ShiftResponse is a shift joined with the staff directory.
type ShiftResponse struct {
	DayKey    string  `json:"dayKey"`
	StaffID   string  `json:"staffId"`
	StaffName string  `json:"staffName"`
	Role      string  `json:"role,omitempty"`
	Icon      string  `json:"icon,omitempty"`
	TimeRange string  `json:"timeRange"`
	Hours     float64 `json:"hours"`
}

// RotaResponse maps day keys to that day's shifts.
type RotaResponse map[string][]ShiftResponse

// ToShiftResponse resolves the staff member through dir. A missing profile
// yields staff.UnknownStaffName rather than an error.
func ToShiftResponse(s Shift, dir staff.Directory) ShiftResponse {
	resp := ShiftResponse{
		DayKey:    s.DayKey,
		StaffID:   s.StaffID,
		StaffName: staff.UnknownStaffName,
		TimeRange: s.TimeRange,
		Hours:     s.Hours(),
	}
	if p, ok := dir[s.StaffID]; ok {
		resp.StaffName = p.Name
		resp.Role = string(p.Role)
		resp.Icon = p.Icon
	}
	return resp
}

func ToShiftResponses(shifts []Shift, dir staff.Directory) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, ToShiftResponse(s, dir))
	}
	return out
}

// RoleGroup is the shifts of one role within a calendar cell.
type RoleGroup struct {
	Role   string          `json:"role"`
	Shifts []ShiftResponse `json:"shifts"`
}

type CalendarCell struct {
	DayKey  string          `json:"dayKey"`
	Day     int             `json:"day"`
	InMonth bool            `json:"inMonth"`
	IsToday bool            `json:"isToday"`
	Shifts  []ShiftResponse `json:"shifts"`
	Groups  []RoleGroup     `json:"groups"`
}

type CalendarResponse struct {
	Month    string         `json:"month"` // Format: "YYYY-MM"
	Weekdays []string       `json:"weekdays"`
	Cells    []CalendarCell `json:"cells"`
}
