package data

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/security"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository"
)

type WipeResponse struct {
	Message string `json:"message"`
	Staff   int    `json:"staff"`
}

type DataService interface {
	// Wipe empties every store and reseeds the staff directory.
	Wipe(ctx context.Context) (WipeResponse, error)
	// EnsureSeeded seeds the directory when it is empty, as on first start.
	EnsureSeeded(ctx context.Context) error
}

type DataServiceImpl struct {
	repos  repository.Set
	hasher security.PINHasher
	now    func() time.Time
}

func NewDataService(repos repository.Set, hasher security.PINHasher) DataService {
	return &DataServiceImpl{repos: repos, hasher: hasher, now: time.Now}
}

func (s *DataServiceImpl) Wipe(ctx context.Context) (WipeResponse, error) {
	profiles, err := fixtures.SeedProfiles(s.hasher, s.now())
	if err != nil {
		return WipeResponse{}, err
	}

	err = s.repos.Tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repos.Notifications.Reset(txCtx); err != nil {
			return fmt.Errorf("failed to reset notifications: %w", err)
		}
		if err := s.repos.Holidays.Reset(txCtx); err != nil {
			return fmt.Errorf("failed to reset holiday requests: %w", err)
		}
		if err := s.repos.Availability.Reset(txCtx); err != nil {
			return fmt.Errorf("failed to reset availability: %w", err)
		}
		if err := s.repos.Shifts.Reset(txCtx); err != nil {
			return fmt.Errorf("failed to reset rota: %w", err)
		}
		if err := s.repos.Staff.Reset(txCtx, fixtures.NextStaffSequence); err != nil {
			return fmt.Errorf("failed to reset staff: %w", err)
		}
		return s.createProfiles(txCtx, profiles)
	})
	if err != nil {
		return WipeResponse{}, err
	}

	slog.Warn("All data wiped and reseeded", "staff", len(profiles))
	return WipeResponse{
		Message: "All data has been wiped and reset to the default staff list.",
		Staff:   len(profiles),
	}, nil
}

func (s *DataServiceImpl) EnsureSeeded(ctx context.Context) error {
	existing, err := s.repos.Staff.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list staff: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	profiles, err := fixtures.SeedProfiles(s.hasher, s.now())
	if err != nil {
		return err
	}
	err = s.repos.Tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repos.Staff.Reset(txCtx, fixtures.NextStaffSequence); err != nil {
			return fmt.Errorf("failed to reset staff: %w", err)
		}
		return s.createProfiles(txCtx, profiles)
	})
	if err != nil {
		return err
	}

	slog.Info("Staff directory seeded", "staff", len(profiles))
	return nil
}

func (s *DataServiceImpl) createProfiles(ctx context.Context, profiles []staff.Profile) error {
	for _, p := range profiles {
		if _, err := s.repos.Staff.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed %s: %w", p.ID, err)
		}
	}
	return nil
}
