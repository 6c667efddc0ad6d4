package rota

import (
	"sort"

	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/timeutil"
)

// Shift is one staff member's assigned time range on one day.
type Shift struct {
	DayKey    string
	StaffID   string
	TimeRange string
}

// Hours is the shift length; malformed ranges count as zero.
func (s Shift) Hours() float64 {
	return timeutil.ShiftHours(s.TimeRange)
}

// Rota maps day keys to the shifts of that day.
type Rota map[string][]Shift

// Group buckets shifts by day key, each day sorted with SortShifts.
func Group(shifts []Shift) Rota {
	r := make(Rota)
	for _, s := range shifts {
		r[s.DayKey] = append(r[s.DayKey], s)
	}
	for _, day := range r {
		SortShifts(day)
	}
	return r
}

// SortShifts orders shifts by start time, then staff id.
func SortShifts(shifts []Shift) {
	sort.SliceStable(shifts, func(i, j int) bool {
		si, _, _ := timeutil.ParseTimeRange(shifts[i].TimeRange)
		sj, _, _ := timeutil.ParseTimeRange(shifts[j].TimeRange)
		if si != sj {
			return si < sj
		}
		return shifts[i].StaffID < shifts[j].StaffID
	})
}
