package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/rota"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monday(t *testing.T) time.Time {
	d, err := time.Parse("2006-01-02", "2025-06-09")
	require.NoError(t, err)
	return d
}

func TestBuildWeeklyWages_ManagerEightHours(t *testing.T) {
	profiles := []staff.Profile{
		{ID: "user-owner-001", Name: "Site Owner", Role: staff.RoleOwner, Wage: decimal.Zero},
		{ID: "user-man-002", Name: "Lyndsey", Role: staff.RoleManager, Wage: decimal.RequireFromString("15.00")},
	}
	shifts := []rota.Shift{
		{DayKey: "2025-06-09", StaffID: "user-man-002", TimeRange: "09:00-17:00"},
	}

	// any day of the week resolves to the same report
	report := BuildWeeklyWages(monday(t).AddDate(0, 0, 3), profiles, shifts)

	assert.Equal(t, "2025-06-09", report.WeekStart)
	assert.Equal(t, "2025-06-15", report.WeekEnd)
	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, "Lyndsey", row.Name)
	assert.Equal(t, 8.0, row.Hours)
	assert.Equal(t, 1, row.Shifts)
	assert.Equal(t, "120.00", row.Pay.StringFixed(2))
	assert.Equal(t, "£120.00", row.PayDisplay)
	assert.Equal(t, "£120.00", report.TotalPayDisplay)
}

func TestBuildWeeklyWages_ZeroHourStaffListed(t *testing.T) {
	profiles := []staff.Profile{
		{ID: "user-foh-002", Name: "John Doe", Role: staff.RoleFOH, Wage: decimal.RequireFromString("11.44")},
		{ID: "user-boh-003", Name: "Jane Smith", Role: staff.RoleBOH, Wage: decimal.RequireFromString("12.00")},
	}
	shifts := []rota.Shift{
		{DayKey: "2025-06-10", StaffID: "user-boh-003", TimeRange: "22:00-02:30"},
		{DayKey: "2025-06-16", StaffID: "user-boh-003", TimeRange: "09:00-17:00"},
		{DayKey: "2025-06-11", StaffID: "user-gone-009", TimeRange: "09:00-17:00"},
	}

	report := BuildWeeklyWages(monday(t), profiles, shifts)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Jane Smith", report.Rows[0].Name)
	assert.Equal(t, 4.5, report.Rows[0].Hours)
	assert.Equal(t, "£54.00", report.Rows[0].PayDisplay)
	assert.Equal(t, "John Doe", report.Rows[1].Name)
	assert.Equal(t, 0.0, report.Rows[1].Hours)
	assert.Equal(t, "£0.00", report.Rows[1].PayDisplay)
	assert.Equal(t, 4.5, report.TotalHours)
}

func TestBuildWeeklyWages_RoundsPay(t *testing.T) {
	profiles := []staff.Profile{
		{ID: "user-foh-002", Name: "John Doe", Role: staff.RoleFOH, Wage: decimal.RequireFromString("11.44")},
	}
	shifts := []rota.Shift{
		{DayKey: "2025-06-09", StaffID: "user-foh-002", TimeRange: "09:00-09:20"},
		{DayKey: "2025-06-10", StaffID: "user-foh-002", TimeRange: "bad"},
	}

	report := BuildWeeklyWages(monday(t), profiles, shifts)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, 2, report.Rows[0].Shifts)
	assert.Equal(t, 0.33, report.Rows[0].Hours)
	assert.Equal(t, "£3.81", report.Rows[0].PayDisplay)
}

func TestBuildWeeklyWages_EmptyStaffList(t *testing.T) {
	report := BuildWeeklyWages(monday(t), nil, nil)
	assert.Empty(t, report.Rows)
	assert.Equal(t, "£0.00", report.TotalPayDisplay)
	assert.Len(t, report.Days, 7)
}
