package staff

type Capability string

const (
	CapabilityAdminAccess       Capability = "admin.access"
	CapabilityStaffManage       Capability = "staff.manage"
	CapabilityDirectoryViewFull Capability = "staff.view_full"
	CapabilityRotaEdit          Capability = "rota.edit"
	CapabilityAvailabilityView  Capability = "availability.view_all"
	CapabilityHolidayDecide     Capability = "holiday.decide"
	CapabilityWagesView         Capability = "reports.wages"
	CapabilityDataWipe          Capability = "data.wipe"
)

// RoleCapabilities is the single definition of what each role may do.
var RoleCapabilities = map[Role][]Capability{
	RoleOwner: {
		CapabilityAdminAccess,
		CapabilityStaffManage,
		CapabilityDirectoryViewFull,
		CapabilityRotaEdit,
		CapabilityAvailabilityView,
		CapabilityHolidayDecide,
		CapabilityWagesView,
		CapabilityDataWipe,
	},
	RoleManager: {
		CapabilityAdminAccess,
		CapabilityDirectoryViewFull,
		CapabilityRotaEdit,
		CapabilityAvailabilityView,
		CapabilityHolidayDecide,
		CapabilityWagesView,
	},
	RoleSupervisor: {},
	RoleFOH:        {},
	RoleBOH:        {},
}

// HasCapability checks if a role has a specific capability
func HasCapability(role Role, capability Capability) bool {
	capabilities, exists := RoleCapabilities[role]
	if !exists {
		return false
	}

	for _, c := range capabilities {
		if c == capability {
			return true
		}
	}

	return false
}

func CanAccessAdmin(role Role) bool       { return HasCapability(role, CapabilityAdminAccess) }
func CanManageStaff(role Role) bool       { return HasCapability(role, CapabilityStaffManage) }
func CanViewFullDirectory(role Role) bool { return HasCapability(role, CapabilityDirectoryViewFull) }
func CanEditRota(role Role) bool          { return HasCapability(role, CapabilityRotaEdit) }
func CanViewAvailability(role Role) bool  { return HasCapability(role, CapabilityAvailabilityView) }
func CanDecideHoliday(role Role) bool     { return HasCapability(role, CapabilityHolidayDecide) }
func CanViewWages(role Role) bool         { return HasCapability(role, CapabilityWagesView) }
func CanWipeData(role Role) bool          { return HasCapability(role, CapabilityDataWipe) }
