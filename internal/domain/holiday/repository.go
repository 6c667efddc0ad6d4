package holiday

import (
	"context"
	"time"
)

type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id int64) (Request, error)
	GetByStaffID(ctx context.Context, staffID string) ([]Request, error)
	GetByStatus(ctx context.Context, status Status) ([]Request, error)
	// UpdateStatus moves a pending request to status. It returns
	// ErrInvalidState when the stored request is no longer pending.
	UpdateStatus(ctx context.Context, id int64, status Status, decidedBy string, decidedAt time.Time) (Request, error)
	DeleteByStaffID(ctx context.Context, staffID string) error
	Reset(ctx context.Context) error
}
