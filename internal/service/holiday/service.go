package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/timeutil"
)

type HolidayServiceImpl struct {
	repo         holiday.RequestRepository
	staffService staff.StaffService
	notifier     notification.Service
	now          func() time.Time
}

func NewHolidayService(repo holiday.RequestRepository, staffService staff.StaffService, notifier notification.Service) holiday.HolidayService {
	return &HolidayServiceImpl{
		repo:         repo,
		staffService: staffService,
		notifier:     notifier,
		now:          time.Now,
	}
}

func (s *HolidayServiceImpl) Submit(ctx context.Context, req holiday.SubmitRequest) (holiday.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.RequestResponse{}, err
	}

	start, _ := timeutil.ParseDayKey(req.StartDate)
	end, _ := timeutil.ParseDayKey(req.EndDate)
	if end.Before(start) {
		return holiday.RequestResponse{}, holiday.ErrInvalidRange
	}

	dir, err := s.staffService.Directory(ctx)
	if err != nil {
		return holiday.RequestResponse{}, err
	}
	requester, ok := dir[req.StaffID]
	if !ok {
		return holiday.RequestResponse{}, staff.ErrStaffNotFound
	}

	created, err := s.repo.Create(ctx, holiday.Request{
		StaffID:   req.StaffID,
		StartDate: start,
		EndDate:   end,
		Status:    holiday.StatusPending,
		CreatedAt: s.now(),
	})
	if err != nil {
		return holiday.RequestResponse{}, fmt.Errorf("failed to create holiday request: %w", err)
	}

	for _, p := range dir {
		if p.ID == requester.ID || !staff.CanDecideHoliday(p.Role) {
			continue
		}
		s.notify(ctx, notification.CreateNotificationRequest{
			RecipientID: p.ID,
			Type:        notification.TypeHolidayRequested,
			Title:       "Holiday request",
			Message:     fmt.Sprintf("%s asked for %s to %s off.", requester.Name, req.StartDate, req.EndDate),
			Data:        map[string]interface{}{"requestId": created.ID},
		})
	}

	return holiday.ToRequestResponse(created, dir), nil
}

// Decide moves a pending request to approved or denied and tells the
// requester. Decided requests are never changed again.
func (s *HolidayServiceImpl) Decide(ctx context.Context, req holiday.DecideRequest) (holiday.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.RequestResponse{}, err
	}

	decided, err := s.repo.UpdateStatus(ctx, req.RequestID, holiday.Status(req.Status), req.DeciderID, s.now())
	if err != nil {
		return holiday.RequestResponse{}, err
	}

	dir, err := s.staffService.Directory(ctx)
	if err != nil {
		return holiday.RequestResponse{}, err
	}

	notifType := notification.TypeHolidayApproved
	if decided.Status == holiday.StatusDenied {
		notifType = notification.TypeHolidayDenied
	}
	s.notify(ctx, notification.CreateNotificationRequest{
		RecipientID: decided.StaffID,
		Type:        notifType,
		Title:       "Holiday request " + string(decided.Status),
		Message: fmt.Sprintf("Your holiday from %s to %s was %s by %s.",
			timeutil.DayKey(decided.StartDate), timeutil.DayKey(decided.EndDate), decided.Status, dir.Name(req.DeciderID)),
		Data: map[string]interface{}{"requestId": decided.ID},
	})

	return holiday.ToRequestResponse(decided, dir), nil
}

func (s *HolidayServiceImpl) ListForStaff(ctx context.Context, staffID string) ([]holiday.RequestResponse, error) {
	requests, err := s.repo.GetByStaffID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday requests: %w", err)
	}
	return s.toResponses(ctx, requests)
}

func (s *HolidayServiceImpl) ListPending(ctx context.Context) ([]holiday.RequestResponse, error) {
	requests, err := s.repo.GetByStatus(ctx, holiday.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday requests: %w", err)
	}
	return s.toResponses(ctx, requests)
}

func (s *HolidayServiceImpl) toResponses(ctx context.Context, requests []holiday.Request) ([]holiday.RequestResponse, error) {
	dir, err := s.staffService.Directory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]holiday.RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, holiday.ToRequestResponse(r, dir))
	}
	return out, nil
}

func (s *HolidayServiceImpl) notify(ctx context.Context, req notification.CreateNotificationRequest) {
	if err := s.notifier.Notify(ctx, req); err != nil {
		slog.Warn("Holiday notification failed", "staff_id", req.RecipientID, "type", req.Type, "error", err)
	}
}
