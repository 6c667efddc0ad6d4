package holiday

import "errors"

var (
	ErrRequestNotFound  = errors.New("holiday request not found")
	ErrInvalidRange     = errors.New("end date must not be before start date")
	ErrInvalidState     = errors.New("holiday request has already been decided")
	ErrInvalidDecision  = errors.New("decision must be approved or denied")
	ErrInvalidDateInput = errors.New("invalid date format, use YYYY-MM-DD")
)
