package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/availability"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/timeutil"
)

type AvailabilityServiceImpl struct {
	repo         availability.AvailabilityRepository
	staffService staff.StaffService
}

func NewAvailabilityService(repo availability.AvailabilityRepository, staffService staff.StaffService) availability.AvailabilityService {
	return &AvailabilityServiceImpl{repo: repo, staffService: staffService}
}

// SetDay replaces the day's tags. Unavailable clears every other tag and an
// empty list clears the day.
func (s *AvailabilityServiceImpl) SetDay(ctx context.Context, req availability.SetDayRequest) (availability.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return availability.DayResponse{}, err
	}
	if _, err := s.staffService.GetByID(ctx, req.StaffID); err != nil {
		return availability.DayResponse{}, err
	}

	tags := req.TagSet()
	if err := s.repo.Put(ctx, availability.Entry{StaffID: req.StaffID, DayKey: req.DayKey, Tags: tags}); err != nil {
		return availability.DayResponse{}, fmt.Errorf("failed to save availability: %w", err)
	}
	return availability.ToDayResponse(req.DayKey, tags), nil
}

func (s *AvailabilityServiceImpl) WeekView(ctx context.Context, staffID string, weekStart time.Time) (availability.WeekResponse, error) {
	if _, err := s.staffService.GetByID(ctx, staffID); err != nil {
		return availability.WeekResponse{}, err
	}

	days := timeutil.WeekDayKeys(weekStart)
	entries, err := s.repo.GetByStaffAndRange(ctx, staffID, days[0], days[len(days)-1])
	if err != nil {
		return availability.WeekResponse{}, fmt.Errorf("failed to get availability: %w", err)
	}

	byDay := make(map[string]availability.TagSet, len(entries))
	for _, e := range entries {
		byDay[e.DayKey] = e.Tags
	}

	resp := availability.WeekResponse{
		StaffID:   staffID,
		WeekStart: days[0],
		Days:      make([]availability.DayResponse, 0, len(days)),
	}
	for _, day := range days {
		resp.Days = append(resp.Days, availability.ToDayResponse(day, byDay[day]))
	}
	return resp, nil
}

// StaffAvailableOn lists staff with at least one working slot on dayKey.
func (s *AvailabilityServiceImpl) StaffAvailableOn(ctx context.Context, dayKey string) ([]string, error) {
	if _, err := timeutil.ParseDayKey(dayKey); err != nil {
		return nil, availability.ErrInvalidDayKey
	}

	entries, err := s.repo.GetByDay(ctx, dayKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Tags.IsAvailable() {
			ids = append(ids, e.StaffID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
