package timeutil

import (
	"regexp"
	"strconv"
	"time"
)

// DayKeyLayout is the only format used to key date-indexed stores.
const DayKeyLayout = "2006-01-02"

// DayKey returns the canonical YYYY-MM-DD key for t.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key into a UTC midnight time.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(DayKeyLayout, key)
}

// Date strips the clock from t, keeping its calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := Date(t)
	if day.Weekday() == time.Sunday {
		return day.AddDate(0, 0, -6)
	}
	return day.AddDate(0, 0, -(int(day.Weekday()) - 1))
}

// WeekDayKeys returns the seven day keys of the week starting at the Monday
// on or before weekStart.
func WeekDayKeys(weekStart time.Time) []string {
	monday := StartOfWeek(weekStart)
	keys := make([]string, 7)
	for i := range keys {
		keys[i] = DayKey(monday.AddDate(0, 0, i))
	}
	return keys
}

// DayKeysBetween returns every key from start to end inclusive. It returns nil
// when end is before start.
func DayKeysBetween(start, end time.Time) []string {
	from, to := Date(start), Date(end)
	if to.Before(from) {
		return nil
	}
	var keys []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		keys = append(keys, DayKey(d))
	}
	return keys
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

var timeRangeRegex = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})\s*$`)

// ParseTimeRange parses "HH:MM-HH:MM" into minutes since midnight.
func ParseTimeRange(timeRange string) (startMinutes, endMinutes int, ok bool) {
	m := timeRangeRegex.FindStringSubmatch(timeRange)
	if m == nil {
		return 0, 0, false
	}
	start, ok := clockMinutes(m[1], m[2])
	if !ok {
		return 0, 0, false
	}
	end, ok := clockMinutes(m[3], m[4])
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// IsValidTimeRange reports whether timeRange is a well-formed "HH:MM-HH:MM".
func IsValidTimeRange(timeRange string) bool {
	_, _, ok := ParseTimeRange(timeRange)
	return ok
}

// ShiftMinutes returns the length of a "HH:MM-HH:MM" shift in minutes. A
// range whose end is before its start runs past midnight. Malformed input
// yields 0 so a bad shift degrades a report instead of failing it.
func ShiftMinutes(timeRange string) int {
	start, end, ok := ParseTimeRange(timeRange)
	if !ok {
		return 0
	}
	diff := end - start
	if diff < 0 {
		diff += 24 * 60
	}
	return diff
}

// ShiftHours is ShiftMinutes in hours.
func ShiftHours(timeRange string) float64 {
	return float64(ShiftMinutes(timeRange)) / 60
}

func clockMinutes(hh, mm string) (int, bool) {
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
