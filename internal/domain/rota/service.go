package rota

import (
	"context"
	"time"
)

type RotaService interface {
	ShiftsOn(ctx context.Context, dayKey string) ([]ShiftResponse, error)
	// ShiftsInRange returns every day from start to end inclusive, days
	// without shifts included as empty lists.
	ShiftsInRange(ctx context.Context, start, end time.Time) (RotaResponse, error)
	// WhoIsWorking is the shift list of the day containing at.
	WhoIsWorking(ctx context.Context, at time.Time) ([]ShiftResponse, error)
	Assign(ctx context.Context, req AssignShiftRequest) (ShiftResponse, error)
	Unassign(ctx context.Context, dayKey, staffID string) error
	MonthCalendar(ctx context.Context, year int, month time.Month) (CalendarResponse, error)
}
