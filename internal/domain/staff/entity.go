package staff

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleOwner      Role = "Owner"      // Site owner - full access
	RoleManager    Role = "Manager"    // Runs the rota, decides holidays
	RoleSupervisor Role = "Supervisor" // Shift lead
	RoleFOH        Role = "FOH"        // Front of house
	RoleBOH        Role = "BOH"        // Back of house
)

var RoleValues = []string{
	string(RoleOwner),
	string(RoleManager),
	string(RoleSupervisor),
	string(RoleFOH),
	string(RoleBOH),
}

// IDPrefix is the role part of generated staff ids, e.g. "foh" in user-foh-004.
func (r Role) IDPrefix() string {
	prefix := strings.ToLower(string(r))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return prefix
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

var GenderValues = []string{
	string(GenderMale),
	string(GenderFemale),
	string(GenderOther),
}

// Icon is the profile glyph shown on the sign-in screen.
func (g Gender) Icon() string {
	switch g {
	case GenderMale:
		return "👨"
	case GenderFemale:
		return "👩"
	default:
		return "👤"
	}
}

// UnknownStaffName is shown wherever a record points at a missing profile.
const UnknownStaffName = "Unknown Staff"

type Profile struct {
	ID        string
	Name      string
	Gender    Gender
	Icon      string
	Role      Role
	Wage      decimal.Decimal
	PINHash   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Directory is an id-indexed snapshot of the staff list used by derived views.
type Directory map[string]Profile

func NewDirectory(profiles []Profile) Directory {
	dir := make(Directory, len(profiles))
	for _, p := range profiles {
		dir[p.ID] = p
	}
	return dir
}

// Name returns the staff member's name or UnknownStaffName.
func (d Directory) Name(id string) string {
	if p, ok := d[id]; ok {
		return p.Name
	}
	return UnknownStaffName
}
