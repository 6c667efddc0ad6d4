package report

import "errors"

var (
	ErrInvalidWeek            = errors.New("invalid week, use YYYY-MM-DD")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
