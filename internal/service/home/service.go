package home

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/availability"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/home"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/rota"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/timeutil"
)

const messageLimit = 5

type HomeServiceImpl struct {
	rotaService         rota.RotaService
	holidayRepo         holiday.RequestRepository
	availabilityRepo    availability.AvailabilityRepository
	notificationService notification.Service
	now                 func() time.Time
}

func NewHomeService(
	rotaService rota.RotaService,
	holidayRepo holiday.RequestRepository,
	availabilityRepo availability.AvailabilityRepository,
	notificationService notification.Service,
) home.HomeService {
	return &HomeServiceImpl{
		rotaService:         rotaService,
		holidayRepo:         holidayRepo,
		availabilityRepo:    availabilityRepo,
		notificationService: notificationService,
		now:                 time.Now,
	}
}

func (s *HomeServiceImpl) Widgets(ctx context.Context, identity auth.Identity) (home.WidgetsResponse, error) {
	now := s.now()

	working, err := s.rotaService.WhoIsWorking(ctx, now)
	if err != nil {
		return home.WidgetsResponse{}, err
	}

	messages, err := s.notificationService.List(ctx, identity.ID, messageLimit)
	if err != nil {
		return home.WidgetsResponse{}, err
	}

	tasks, err := s.tasks(ctx, identity, now, messages.UnreadCount)
	if err != nil {
		return home.WidgetsResponse{}, err
	}

	return home.WidgetsResponse{
		Today:        timeutil.DayKey(now),
		WhoIsWorking: working,
		Tasks:        tasks,
		Messages:     messages.Notifications,
	}, nil
}

func (s *HomeServiceImpl) tasks(ctx context.Context, identity auth.Identity, now time.Time, unread int) ([]home.Task, error) {
	tasks := make([]home.Task, 0, 4)

	if staff.CanDecideHoliday(identity.Role) {
		pending, err := s.holidayRepo.GetByStatus(ctx, holiday.StatusPending)
		if err != nil {
			return nil, fmt.Errorf("failed to count pending holidays: %w", err)
		}
		if n := len(pending); n > 0 {
			tasks = append(tasks, home.Task{
				Kind:  home.TaskDecideHolidays,
				Title: plural(n, "holiday request needs", "holiday requests need") + " a decision",
				Count: n,
			})
		}
	}

	if identity.Role != staff.RoleOwner {
		nextWeek := timeutil.WeekDayKeys(timeutil.StartOfWeek(now).AddDate(0, 0, 7))
		entries, err := s.availabilityRepo.GetByStaffAndRange(ctx, identity.ID, nextWeek[0], nextWeek[len(nextWeek)-1])
		if err != nil {
			return nil, fmt.Errorf("failed to get availability: %w", err)
		}
		if missing := len(nextWeek) - len(entries); missing > 0 {
			tasks = append(tasks, home.Task{
				Kind:  home.TaskSetAvailability,
				Title: fmt.Sprintf("Set your availability for next week (%s missing)", plural(missing, "day", "days")),
				Count: missing,
			})
		}
	}

	own, err := s.holidayRepo.GetByStaffID(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get holiday requests: %w", err)
	}
	waiting := 0
	for _, r := range own {
		if r.IsPending() {
			waiting++
		}
	}
	if waiting > 0 {
		tasks = append(tasks, home.Task{
			Kind:  home.TaskHolidayAwaiting,
			Title: "Waiting on " + plural(waiting, "holiday request", "holiday requests"),
			Count: waiting,
		})
	}

	if unread > 0 {
		tasks = append(tasks, home.Task{
			Kind:  home.TaskUnreadNotification,
			Title: plural(unread, "unread message", "unread messages"),
			Count: unread,
		})
	}

	return tasks, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
