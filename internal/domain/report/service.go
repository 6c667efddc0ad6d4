package report

import (
	"context"
	"time"
)

type ReportService interface {
	// WeeklyWages reports the week containing weekStart.
	WeeklyWages(ctx context.Context, weekStart time.Time) (WeeklyWageReport, error)
	ExportWeeklyWagesXLSX(ctx context.Context, weekStart time.Time) (ExportFile, error)
}
