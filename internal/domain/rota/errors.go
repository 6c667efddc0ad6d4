package rota

import "errors"

var (
	ErrShiftNotFound     = errors.New("shift not found")
	ErrInvalidTimeRange  = errors.New("time range must be in HH:MM-HH:MM format")
	ErrInvalidDayKey     = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
	ErrDateRangeTooLarge = errors.New("date range must not exceed 62 days")
	ErrInvalidMonth      = errors.New("invalid month format, use YYYY-MM")
)
