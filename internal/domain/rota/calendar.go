package rota

import (
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/timeutil"
)

var calendarWeekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// roleOrder fixes the colour-group order inside a cell; unknown staff go last.
var roleOrder = []string{
	string(staff.RoleOwner),
	string(staff.RoleManager),
	string(staff.RoleSupervisor),
	string(staff.RoleFOH),
	string(staff.RoleBOH),
	"",
}

// MonthGridBounds returns the first and last day shown on a Monday-first
// month grid: leading days of the previous month and trailing days of the
// next one included.
func MonthGridBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := (int(first.Weekday()) + 6) % 7
	last := time.Date(year, month, timeutil.DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	trailing := (7 - (leading+timeutil.DaysInMonth(year, month))%7) % 7
	return first.AddDate(0, 0, -leading), last.AddDate(0, 0, trailing)
}

// BuildMonthGrid lays out a 7-column month calendar. The cell count is always
// a multiple of seven.
func BuildMonthGrid(year int, month time.Month, r Rota, dir staff.Directory, today time.Time) CalendarResponse {
	start, end := MonthGridBounds(year, month)
	todayKey := timeutil.DayKey(today)

	cells := make([]CalendarCell, 0, 42)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := timeutil.DayKey(d)
		day := append([]Shift(nil), r[key]...)
		SortShifts(day)
		shifts := ToShiftResponses(day, dir)

		cells = append(cells, CalendarCell{
			DayKey:  key,
			Day:     d.Day(),
			InMonth: d.Month() == month,
			IsToday: key == todayKey,
			Shifts:  shifts,
			Groups:  groupByRole(shifts),
		})
	}

	return CalendarResponse{
		Month:    time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
		Weekdays: calendarWeekdays,
		Cells:    cells,
	}
}

func groupByRole(shifts []ShiftResponse) []RoleGroup {
	byRole := make(map[string][]ShiftResponse)
	for _, s := range shifts {
		byRole[s.Role] = append(byRole[s.Role], s)
	}
	groups := make([]RoleGroup, 0, len(byRole))
	for _, role := range roleOrder {
		if s, ok := byRole[role]; ok {
			groups = append(groups, RoleGroup{Role: role, Shifts: s})
		}
	}
	return groups
}
