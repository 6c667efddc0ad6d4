package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/rota"
)

type shiftRepository struct {
	mu sync.RWMutex
	// dayKey -> staffID -> time range
	days map[string]map[string]string
}

func NewShiftRepository() rota.ShiftRepository {
	return &shiftRepository{days: make(map[string]map[string]string)}
}

func (r *shiftRepository) GetByDay(ctx context.Context, dayKey string) ([]rota.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shifts := make([]rota.Shift, 0, len(r.days[dayKey]))
	for staffID, tr := range r.days[dayKey] {
		shifts = append(shifts, rota.Shift{DayKey: dayKey, StaffID: staffID, TimeRange: tr})
	}
	rota.SortShifts(shifts)
	return shifts, nil
}

// GetByRange relies on YYYY-MM-DD keys sorting chronologically as strings.
func (r *shiftRepository) GetByRange(ctx context.Context, startKey, endKey string) ([]rota.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var shifts []rota.Shift
	for dayKey, byStaff := range r.days {
		if dayKey < startKey || dayKey > endKey {
			continue
		}
		for staffID, tr := range byStaff {
			shifts = append(shifts, rota.Shift{DayKey: dayKey, StaffID: staffID, TimeRange: tr})
		}
	}
	return shifts, nil
}

func (r *shiftRepository) Upsert(ctx context.Context, shift rota.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.days[shift.DayKey] == nil {
		r.days[shift.DayKey] = make(map[string]string)
	}
	r.days[shift.DayKey][shift.StaffID] = shift.TimeRange
	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, dayKey, staffID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.days[dayKey][staffID]; !ok {
		return rota.ErrShiftNotFound
	}
	delete(r.days[dayKey], staffID)
	if len(r.days[dayKey]) == 0 {
		delete(r.days, dayKey)
	}
	return nil
}

func (r *shiftRepository) DeleteByStaffID(ctx context.Context, staffID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for dayKey, byStaff := range r.days {
		delete(byStaff, staffID)
		if len(byStaff) == 0 {
			delete(r.days, dayKey)
		}
	}
	return nil
}

func (r *shiftRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.days = make(map[string]map[string]string)
	return nil
}
