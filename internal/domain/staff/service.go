package staff

import "context"

type StaffService interface {
	ListPublic(ctx context.Context) ([]PublicProfile, error)
	ListFull(ctx context.Context) ([]FullProfile, error)
	Directory(ctx context.Context) (Directory, error)
	GetByID(ctx context.Context, id string) (Profile, error)

	Create(ctx context.Context, req CreateStaffRequest) (Profile, error)
	Update(ctx context.Context, id string, req UpdateStaffRequest) error
	Delete(ctx context.Context, id string) error

	// Authenticate returns the profile when pin matches its stored hash.
	Authenticate(ctx context.Context, id, pin string) (Profile, error)
	ChangeOwnPIN(ctx context.Context, id string, req ChangePINRequest) error
	ResetPIN(ctx context.Context, id string) (string, error)
}
