package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityTable(t *testing.T) {
	cases := []struct {
		name  string
		check func(Role) bool
		allow []Role
	}{
		{"CanAccessAdmin", CanAccessAdmin, []Role{RoleOwner, RoleManager}},
		{"CanManageStaff", CanManageStaff, []Role{RoleOwner}},
		{"CanViewFullDirectory", CanViewFullDirectory, []Role{RoleOwner, RoleManager}},
		{"CanEditRota", CanEditRota, []Role{RoleOwner, RoleManager}},
		{"CanViewAvailability", CanViewAvailability, []Role{RoleOwner, RoleManager}},
		{"CanDecideHoliday", CanDecideHoliday, []Role{RoleOwner, RoleManager}},
		{"CanViewWages", CanViewWages, []Role{RoleOwner, RoleManager}},
		{"CanWipeData", CanWipeData, []Role{RoleOwner}},
	}

	roles := []Role{RoleOwner, RoleManager, RoleSupervisor, RoleFOH, RoleBOH, Role("Intern")}
	for _, c := range cases {
		for _, role := range roles {
			want := false
			for _, allowed := range c.allow {
				if allowed == role {
					want = true
				}
			}
			assert.Equal(t, want, c.check(role), "%s(%s)", c.name, role)
		}
	}
}

func TestRoleIDPrefix(t *testing.T) {
	assert.Equal(t, "own", RoleOwner.IDPrefix())
	assert.Equal(t, "man", RoleManager.IDPrefix())
	assert.Equal(t, "sup", RoleSupervisor.IDPrefix())
	assert.Equal(t, "foh", RoleFOH.IDPrefix())
	assert.Equal(t, "boh", RoleBOH.IDPrefix())
}

func TestGenderIcon(t *testing.T) {
	assert.Equal(t, "👨", GenderMale.Icon())
	assert.Equal(t, "👩", GenderFemale.Icon())
	assert.Equal(t, "👤", GenderOther.Icon())
	assert.Equal(t, "👤", Gender("").Icon())
}

func TestDirectoryName(t *testing.T) {
	dir := NewDirectory([]Profile{{ID: "user-foh-002", Name: "John Doe"}})
	assert.Equal(t, "John Doe", dir.Name("user-foh-002"))
	assert.Equal(t, UnknownStaffName, dir.Name("user-boh-999"))
}
