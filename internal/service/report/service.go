package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/rota"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/timeutil"
)

type ReportServiceImpl struct {
	staffRepo staff.StaffRepository
	shiftRepo rota.ShiftRepository
}

func NewReportService(staffRepo staff.StaffRepository, shiftRepo rota.ShiftRepository) report.ReportService {
	return &ReportServiceImpl{staffRepo: staffRepo, shiftRepo: shiftRepo}
}

func (s *ReportServiceImpl) WeeklyWages(ctx context.Context, weekStart time.Time) (report.WeeklyWageReport, error) {
	profiles, err := s.staffRepo.List(ctx)
	if err != nil {
		return report.WeeklyWageReport{}, fmt.Errorf("failed to list staff: %w", err)
	}

	days := timeutil.WeekDayKeys(weekStart)
	shifts, err := s.shiftRepo.GetByRange(ctx, days[0], days[len(days)-1])
	if err != nil {
		return report.WeeklyWageReport{}, fmt.Errorf("failed to get shifts: %w", err)
	}

	return report.BuildWeeklyWages(weekStart, profiles, shifts), nil
}

func (s *ReportServiceImpl) ExportWeeklyWagesXLSX(ctx context.Context, weekStart time.Time) (report.ExportFile, error) {
	wages, err := s.WeeklyWages(ctx, weekStart)
	if err != nil {
		return report.ExportFile{}, err
	}

	content, err := WriteWagesXLSX(wages)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	return report.ExportFile{
		FileName:    fmt.Sprintf("wages-%s.xlsx", wages.WeekStart),
		ContentType: XLSXContentType,
		Content:     content,
	}, nil
}
