package availability

import (
	"fmt"

	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/validator"
)

// SetDayRequest replaces a staff member's availability for one day.
type SetDayRequest struct {
	StaffID string   `json:"-"`
	DayKey  string   `json:"-"`
	Tags    []string `json:"tags"`
}

func (r *SetDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staffId",
			Message: "staffId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.DayKey); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "dayKey",
			Message: ErrInvalidDayKey.Error(),
		})
	}

	for _, t := range r.Tags {
		if !validator.IsInSlice(t, TagValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "tags",
				Message: fmt.Sprintf("%q is not one of Unavailable, Morning, Afternoon, Evening", t),
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TagSet converts the request tags into a normalised set.
func (r *SetDayRequest) TagSet() TagSet {
	tags := make([]Tag, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, Tag(t))
	}
	return NewTagSet(tags...)
}

type DayResponse struct {
	DayKey    string   `json:"dayKey"`
	Tags      []string `json:"tags"`
	Available bool     `json:"available"`
}

func ToDayResponse(dayKey string, tags TagSet) DayResponse {
	sorted := tags.Sorted()
	out := make([]string, 0, len(sorted))
	for _, t := range sorted {
		out = append(out, string(t))
	}
	return DayResponse{
		DayKey:    dayKey,
		Tags:      out,
		Available: tags.IsAvailable(),
	}
}

type WeekResponse struct {
	StaffID   string        `json:"staffId"`
	WeekStart string        `json:"weekStart"`
	Days      []DayResponse `json:"days"`
}

type AvailableStaffResponse struct {
	DayKey   string   `json:"dayKey"`
	StaffIDs []string `json:"staffIds"`
}
