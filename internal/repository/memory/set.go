package memory

import "github.com/cmlabs-hris/rota-backend-go/internal/repository"

// NewSet returns empty in-memory stores. Their contents are lost on restart.
func NewSet() repository.Set {
	return repository.Set{
		Staff:         NewStaffRepository(),
		Shifts:        NewShiftRepository(),
		Availability:  NewAvailabilityRepository(),
		Holidays:      NewHolidayRepository(),
		Notifications: NewNotificationRepository(),
		Tx:            NewTransactor(),
	}
}
