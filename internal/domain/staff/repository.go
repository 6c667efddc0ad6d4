package staff

import (
	"context"
)

type StaffRepository interface {
	List(ctx context.Context) ([]Profile, error)
	GetByID(ctx context.Context, id string) (Profile, error)
	// ExistsByName compares names case-insensitively. excludeID skips one
	// profile so an update can keep its own name.
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
	// NextSequence returns the next number for generated staff ids.
	NextSequence(ctx context.Context) (int64, error)
	Create(ctx context.Context, profile Profile) (Profile, error)
	Update(ctx context.Context, profile Profile) error
	UpdatePINHash(ctx context.Context, id, pinHash string) error
	Delete(ctx context.Context, id string) error
	// Reset drops every profile and restarts the id sequence at next.
	Reset(ctx context.Context, next int64) error
}
