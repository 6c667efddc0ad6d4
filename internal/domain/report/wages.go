package report

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/rota"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// BuildWeeklyWages totals each non-Owner staff member's scheduled hours for
// the week containing weekStart and prices them at their hourly wage. Staff
// without shifts are listed with zero hours. Shifts outside the week or
// belonging to unknown staff are ignored.
func BuildWeeklyWages(weekStart time.Time, profiles []staff.Profile, shifts []rota.Shift) WeeklyWageReport {
	days := timeutil.WeekDayKeys(weekStart)
	inWeek := make(map[string]bool, len(days))
	for _, d := range days {
		inWeek[d] = true
	}

	minutes := make(map[string]int)
	count := make(map[string]int)
	for _, s := range shifts {
		if !inWeek[s.DayKey] {
			continue
		}
		minutes[s.StaffID] += timeutil.ShiftMinutes(s.TimeRange)
		count[s.StaffID]++
	}

	report := WeeklyWageReport{
		WeekStart: days[0],
		WeekEnd:   days[len(days)-1],
		Days:      days,
		Rows:      make([]WageRow, 0, len(profiles)),
		TotalPay:  decimal.Zero,
	}

	totalMinutes := 0
	for _, p := range profiles {
		if p.Role == staff.RoleOwner {
			continue
		}
		m := minutes[p.ID]
		hours := decimal.NewFromInt(int64(m)).Div(minutesPerHour)
		pay := hours.Mul(p.Wage).Round(2)

		report.Rows = append(report.Rows, WageRow{
			StaffID:    p.ID,
			Name:       p.Name,
			Role:       string(p.Role),
			Shifts:     count[p.ID],
			Hours:      hours.Round(2).InexactFloat64(),
			Wage:       p.Wage.Round(2),
			Pay:        pay,
			PayDisplay: FormatMoney(pay),
		})
		totalMinutes += m
		report.TotalPay = report.TotalPay.Add(pay)
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Name < report.Rows[j].Name
	})

	report.TotalHours = decimal.NewFromInt(int64(totalMinutes)).Div(minutesPerHour).Round(2).InexactFloat64()
	report.TotalPayDisplay = FormatMoney(report.TotalPay)
	return report
}

// FormatMoney renders an amount in pounds with two decimal places.
func FormatMoney(amount decimal.Decimal) string {
	return "£" + amount.StringFixed(2)
}
