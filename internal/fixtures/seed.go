package fixtures

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/security"
	"github.com/shopspring/decimal"
)

// SeedStaffMember is a starting profile with its PIN in clear.
type SeedStaffMember struct {
	ID     string
	Name   string
	Gender staff.Gender
	Role   staff.Role
	Wage   string
	PIN    string
}

// SeedStaff is the directory a fresh or wiped store starts with.
var SeedStaff = []SeedStaffMember{
	{ID: "user-owner-001", Name: "Site Owner", Gender: staff.GenderOther, Role: staff.RoleOwner, Wage: "0", PIN: "0000"},
	{ID: "user-foh-002", Name: "John Doe", Gender: staff.GenderMale, Role: staff.RoleFOH, Wage: "11.44", PIN: "1234"},
	{ID: "user-boh-003", Name: "Jane Smith", Gender: staff.GenderFemale, Role: staff.RoleBOH, Wage: "12.00", PIN: "5678"},
}

// NextStaffSequence continues the id numbering after SeedStaff.
const NextStaffSequence int64 = 4

// SeedProfiles hashes the seed PINs and builds the profiles to store.
func SeedProfiles(hasher security.PINHasher, now time.Time) ([]staff.Profile, error) {
	profiles := make([]staff.Profile, 0, len(SeedStaff))
	for _, m := range SeedStaff {
		pinHash, err := hasher.Hash(m.PIN)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", m.ID, err)
		}
		wage, err := decimal.NewFromString(m.Wage)
		if err != nil {
			return nil, fmt.Errorf("seed %s wage: %w", m.ID, err)
		}
		profiles = append(profiles, staff.Profile{
			ID:        m.ID,
			Name:      m.Name,
			Gender:    m.Gender,
			Icon:      m.Gender.Icon(),
			Role:      m.Role,
			Wage:      wage,
			PINHash:   pinHash,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return profiles, nil
}
