package availability

import (
	"context"
	"time"
)

type AvailabilityService interface {
	SetDay(ctx context.Context, req SetDayRequest) (DayResponse, error)
	WeekView(ctx context.Context, staffID string, weekStart time.Time) (WeekResponse, error)
	StaffAvailableOn(ctx context.Context, dayKey string) ([]string, error)
}
