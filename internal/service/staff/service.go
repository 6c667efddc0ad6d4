package staff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/security"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository"
)

type StaffServiceImpl struct {
	repos    repository.Set
	hasher   security.PINHasher
	notifier notification.Service
	now      func() time.Time
}

// NewStaffService uses repos.Staff for the directory and the other stores
// when a deletion cascades.
func NewStaffService(repos repository.Set, hasher security.PINHasher, notifier notification.Service) staff.StaffService {
	return &StaffServiceImpl{
		repos:    repos,
		hasher:   hasher,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *StaffServiceImpl) ListPublic(ctx context.Context) ([]staff.PublicProfile, error) {
	profiles, err := s.repos.Staff.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	out := make([]staff.PublicProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, staff.ToPublicProfile(p))
	}
	return out, nil
}

func (s *StaffServiceImpl) ListFull(ctx context.Context) ([]staff.FullProfile, error) {
	profiles, err := s.repos.Staff.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	out := make([]staff.FullProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, staff.ToFullProfile(p))
	}
	return out, nil
}

func (s *StaffServiceImpl) Directory(ctx context.Context) (staff.Directory, error) {
	profiles, err := s.repos.Staff.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff.NewDirectory(profiles), nil
}

func (s *StaffServiceImpl) GetByID(ctx context.Context, id string) (staff.Profile, error) {
	return s.repos.Staff.GetByID(ctx, id)
}

func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.Profile, error) {
	if err := req.Validate(); err != nil {
		return staff.Profile{}, err
	}

	exists, err := s.repos.Staff.ExistsByName(ctx, req.Name, "")
	if err != nil {
		return staff.Profile{}, fmt.Errorf("failed to check staff name: %w", err)
	}
	if exists {
		return staff.Profile{}, staff.ErrDuplicateName
	}

	seq, err := s.repos.Staff.NextSequence(ctx)
	if err != nil {
		return staff.Profile{}, fmt.Errorf("failed to allocate staff id: %w", err)
	}

	pinHash, err := s.hasher.Hash(security.DefaultPIN)
	if err != nil {
		return staff.Profile{}, err
	}

	role := staff.Role(req.Role)
	gender := staff.Gender(req.Gender)
	now := s.now()
	profile := staff.Profile{
		ID:        fmt.Sprintf("user-%s-%03d", role.IDPrefix(), seq),
		Name:      req.Name,
		Gender:    gender,
		Icon:      gender.Icon(),
		Role:      role,
		Wage:      req.Wage.Round(2),
		PINHash:   pinHash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repos.Staff.Create(ctx, profile)
	if err != nil {
		if errors.Is(err, staff.ErrDuplicateName) {
			return staff.Profile{}, err
		}
		return staff.Profile{}, fmt.Errorf("failed to create staff: %w", err)
	}

	slog.Info("Staff created", "staff_id", created.ID, "role", created.Role)
	return created, nil
}

func (s *StaffServiceImpl) Update(ctx context.Context, id string, req staff.UpdateStaffRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	current, err := s.repos.Staff.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Role == staff.RoleOwner && staff.Role(req.Role) != staff.RoleOwner {
		return staff.ErrOwnerRoleLocked
	}

	exists, err := s.repos.Staff.ExistsByName(ctx, req.Name, id)
	if err != nil {
		return fmt.Errorf("failed to check staff name: %w", err)
	}
	if exists {
		return staff.ErrDuplicateName
	}

	gender := staff.Gender(req.Gender)
	current.Name = req.Name
	current.Gender = gender
	current.Icon = gender.Icon()
	current.Role = staff.Role(req.Role)
	current.Wage = req.Wage.Round(2)
	current.UpdatedAt = s.now()

	return s.repos.Staff.Update(ctx, current)
}

// Delete removes a profile together with its shifts, availability, holiday
// requests and notifications. Owner profiles are never deleted.
func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	profile, err := s.repos.Staff.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if profile.Role == staff.RoleOwner {
		return staff.ErrOwnerCannotBeDeleted
	}

	err = s.repos.Tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repos.Shifts.DeleteByStaffID(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete shifts: %w", err)
		}
		if err := s.repos.Availability.DeleteByStaffID(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete availability: %w", err)
		}
		if err := s.repos.Holidays.DeleteByStaffID(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete holiday requests: %w", err)
		}
		if err := s.repos.Notifications.DeleteByRecipient(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete notifications: %w", err)
		}
		return s.repos.Staff.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	slog.Info("Staff deleted", "staff_id", id)
	return nil
}

func (s *StaffServiceImpl) Authenticate(ctx context.Context, id, pin string) (staff.Profile, error) {
	profile, err := s.repos.Staff.GetByID(ctx, id)
	if err != nil {
		return staff.Profile{}, err
	}
	if !s.hasher.Verify(pin, profile.PINHash) {
		return staff.Profile{}, staff.ErrIncorrectPIN
	}
	return profile, nil
}

func (s *StaffServiceImpl) ChangeOwnPIN(ctx context.Context, id string, req staff.ChangePINRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	profile, err := s.repos.Staff.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(req.CurrentPIN, profile.PINHash) {
		return staff.ErrIncorrectPIN
	}

	pinHash, err := s.hasher.Hash(req.NewPIN)
	if err != nil {
		return err
	}
	return s.repos.Staff.UpdatePINHash(ctx, id, pinHash)
}

// ResetPIN issues a new random PIN and returns it in clear exactly once.
func (s *StaffServiceImpl) ResetPIN(ctx context.Context, id string) (string, error) {
	if _, err := s.repos.Staff.GetByID(ctx, id); err != nil {
		return "", err
	}

	pin, err := security.RandomPIN()
	if err != nil {
		return "", err
	}
	pinHash, err := s.hasher.Hash(pin)
	if err != nil {
		return "", err
	}
	if err := s.repos.Staff.UpdatePINHash(ctx, id, pinHash); err != nil {
		return "", err
	}

	if err := s.notifier.Notify(ctx, notification.CreateNotificationRequest{
		RecipientID: id,
		Type:        notification.TypePINReset,
		Title:       "PIN reset",
		Message:     "Your PIN was reset by the owner. Ask them for the new one.",
	}); err != nil {
		slog.Warn("PIN reset notification failed", "staff_id", id, "error", err)
	}

	return pin, nil
}
