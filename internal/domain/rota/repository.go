package rota

import (
	"context"
)

type ShiftRepository interface {
	GetByDay(ctx context.Context, dayKey string) ([]Shift, error)
	// GetByRange returns shifts whose day key lies between startKey and endKey
	// inclusive.
	GetByRange(ctx context.Context, startKey, endKey string) ([]Shift, error)
	// Upsert stores the shift, replacing any shift the same staff member
	// already has on that day.
	Upsert(ctx context.Context, shift Shift) error
	Delete(ctx context.Context, dayKey, staffID string) error
	DeleteByStaffID(ctx context.Context, staffID string) error
	Reset(ctx context.Context) error
}
