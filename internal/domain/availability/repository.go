package availability

import (
	"context"
)

type AvailabilityRepository interface {
	// Put replaces the tags of one staff member's day. An empty set removes
	// the entry.
	Put(ctx context.Context, entry Entry) error
	GetByStaffAndRange(ctx context.Context, staffID, startKey, endKey string) ([]Entry, error)
	GetByDay(ctx context.Context, dayKey string) ([]Entry, error)
	DeleteByStaffID(ctx context.Context, staffID string) error
	Reset(ctx context.Context) error
}
