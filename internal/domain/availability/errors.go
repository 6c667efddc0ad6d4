package availability

import "errors"

var (
	ErrInvalidTag    = errors.New("invalid availability tag")
	ErrInvalidDayKey = errors.New("invalid date format, use YYYY-MM-DD")
)
