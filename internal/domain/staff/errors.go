package staff

import "errors"

var (
	ErrStaffNotFound          = errors.New("staff member not found")
	ErrDuplicateName          = errors.New("an account with this name already exists")
	ErrIncorrectPIN           = errors.New("current PIN is incorrect")
	ErrOwnerCannotBeDeleted   = errors.New("owner accounts cannot be deleted")
	ErrOwnerRoleLocked        = errors.New("owner accounts cannot change role")
	ErrOwnerAccessRequired    = errors.New("owner access required")
	ErrInsufficientPermission = errors.New("you do not have permission to perform this action")
)
