package repository

import (
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/availability"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/rota"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/database"
)

// Set is one storage backend: every repository plus the transactor that
// spans them.
type Set struct {
	Staff         staff.StaffRepository
	Shifts        rota.ShiftRepository
	Availability  availability.AvailabilityRepository
	Holidays      holiday.RequestRepository
	Notifications notification.Repository
	Tx            database.Transactor
}
