package rota

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/rota"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/timeutil"
)

// MaxRangeDays bounds ShiftsInRange; a calendar grid never spans more.
const MaxRangeDays = 62

type RotaServiceImpl struct {
	shiftRepo    rota.ShiftRepository
	staffService staff.StaffService
	notifier     notification.Service
	now          func() time.Time
}

func NewRotaService(shiftRepo rota.ShiftRepository, staffService staff.StaffService, notifier notification.Service) rota.RotaService {
	return &RotaServiceImpl{
		shiftRepo:    shiftRepo,
		staffService: staffService,
		notifier:     notifier,
		now:          time.Now,
	}
}

func (s *RotaServiceImpl) ShiftsOn(ctx context.Context, dayKey string) ([]rota.ShiftResponse, error) {
	if _, err := timeutil.ParseDayKey(dayKey); err != nil {
		return nil, rota.ErrInvalidDayKey
	}

	shifts, err := s.shiftRepo.GetByDay(ctx, dayKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	dir, err := s.staffService.Directory(ctx)
	if err != nil {
		return nil, err
	}
	rota.SortShifts(shifts)
	return rota.ToShiftResponses(shifts, dir), nil
}

func (s *RotaServiceImpl) ShiftsInRange(ctx context.Context, start, end time.Time) (rota.RotaResponse, error) {
	days := timeutil.DayKeysBetween(start, end)
	if len(days) == 0 {
		return nil, rota.ErrInvalidDateRange
	}
	if len(days) > MaxRangeDays {
		return nil, rota.ErrDateRangeTooLarge
	}

	shifts, err := s.shiftRepo.GetByRange(ctx, days[0], days[len(days)-1])
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	dir, err := s.staffService.Directory(ctx)
	if err != nil {
		return nil, err
	}

	grouped := rota.Group(shifts)
	resp := make(rota.RotaResponse, len(days))
	for _, day := range days {
		resp[day] = rota.ToShiftResponses(grouped[day], dir)
	}
	return resp, nil
}

func (s *RotaServiceImpl) WhoIsWorking(ctx context.Context, at time.Time) ([]rota.ShiftResponse, error) {
	return s.ShiftsOn(ctx, timeutil.DayKey(at))
}

// Assign puts the staff member on the day, replacing a shift they already
// have there, and tells them about it.
func (s *RotaServiceImpl) Assign(ctx context.Context, req rota.AssignShiftRequest) (rota.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return rota.ShiftResponse{}, err
	}

	profile, err := s.staffService.GetByID(ctx, req.StaffID)
	if err != nil {
		return rota.ShiftResponse{}, err
	}

	shift := rota.Shift{DayKey: req.DayKey, StaffID: req.StaffID, TimeRange: req.TimeRange}
	if err := s.shiftRepo.Upsert(ctx, shift); err != nil {
		return rota.ShiftResponse{}, fmt.Errorf("failed to save shift: %w", err)
	}

	s.notify(ctx, notification.CreateNotificationRequest{
		RecipientID: shift.StaffID,
		Type:        notification.TypeShiftAssigned,
		Title:       "New shift",
		Message:     fmt.Sprintf("You are working %s on %s.", shift.TimeRange, shift.DayKey),
		Data:        map[string]interface{}{"dayKey": shift.DayKey, "timeRange": shift.TimeRange},
	})

	return rota.ToShiftResponse(shift, staff.Directory{profile.ID: profile}), nil
}

func (s *RotaServiceImpl) Unassign(ctx context.Context, dayKey, staffID string) error {
	if _, err := timeutil.ParseDayKey(dayKey); err != nil {
		return rota.ErrInvalidDayKey
	}
	if err := s.shiftRepo.Delete(ctx, dayKey, staffID); err != nil {
		return err
	}

	s.notify(ctx, notification.CreateNotificationRequest{
		RecipientID: staffID,
		Type:        notification.TypeShiftRemoved,
		Title:       "Shift removed",
		Message:     fmt.Sprintf("Your shift on %s was removed.", dayKey),
		Data:        map[string]interface{}{"dayKey": dayKey},
	})
	return nil
}

func (s *RotaServiceImpl) MonthCalendar(ctx context.Context, year int, month time.Month) (rota.CalendarResponse, error) {
	if month < time.January || month > time.December {
		return rota.CalendarResponse{}, rota.ErrInvalidMonth
	}

	start, end := rota.MonthGridBounds(year, month)
	shifts, err := s.shiftRepo.GetByRange(ctx, timeutil.DayKey(start), timeutil.DayKey(end))
	if err != nil {
		return rota.CalendarResponse{}, fmt.Errorf("failed to get shifts: %w", err)
	}
	dir, err := s.staffService.Directory(ctx)
	if err != nil {
		return rota.CalendarResponse{}, err
	}

	return rota.BuildMonthGrid(year, month, rota.Group(shifts), dir, s.now()), nil
}

// notify never fails the rota change it reports on.
func (s *RotaServiceImpl) notify(ctx context.Context, req notification.CreateNotificationRequest) {
	if err := s.notifier.Notify(ctx, req); err != nil {
		slog.Warn("Rota notification failed", "staff_id", req.RecipientID, "type", req.Type, "error", err)
	}
}
