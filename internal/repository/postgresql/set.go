package postgresql

import (
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository"
)

func NewSet(db *database.DB) repository.Set {
	return repository.Set{
		Staff:         NewStaffRepository(db),
		Shifts:        NewShiftRepository(db),
		Availability:  NewAvailabilityRepository(db),
		Holidays:      NewHolidayRepository(db),
		Notifications: NewNotificationRepository(db),
		Tx:            NewTransactor(db),
	}
}
