package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/availability"
)

type availabilityRepository struct {
	mu sync.RWMutex
	// staffID -> dayKey -> tags
	entries map[string]map[string]availability.TagSet
}

func NewAvailabilityRepository() availability.AvailabilityRepository {
	return &availabilityRepository{entries: make(map[string]map[string]availability.TagSet)}
}

func copyTags(tags availability.TagSet) availability.TagSet {
	out := make(availability.TagSet, len(tags))
	for t := range tags {
		out[t] = struct{}{}
	}
	return out
}

func (r *availabilityRepository) Put(ctx context.Context, entry availability.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(entry.Tags) == 0 {
		delete(r.entries[entry.StaffID], entry.DayKey)
		if len(r.entries[entry.StaffID]) == 0 {
			delete(r.entries, entry.StaffID)
		}
		return nil
	}
	if r.entries[entry.StaffID] == nil {
		r.entries[entry.StaffID] = make(map[string]availability.TagSet)
	}
	r.entries[entry.StaffID][entry.DayKey] = copyTags(entry.Tags)
	return nil
}

func (r *availabilityRepository) GetByStaffAndRange(ctx context.Context, staffID, startKey, endKey string) ([]availability.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []availability.Entry
	for dayKey, tags := range r.entries[staffID] {
		if dayKey < startKey || dayKey > endKey {
			continue
		}
		out = append(out, availability.Entry{StaffID: staffID, DayKey: dayKey, Tags: copyTags(tags)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayKey < out[j].DayKey })
	return out, nil
}

func (r *availabilityRepository) GetByDay(ctx context.Context, dayKey string) ([]availability.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []availability.Entry
	for staffID, days := range r.entries {
		if tags, ok := days[dayKey]; ok {
			out = append(out, availability.Entry{StaffID: staffID, DayKey: dayKey, Tags: copyTags(tags)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StaffID < out[j].StaffID })
	return out, nil
}

func (r *availabilityRepository) DeleteByStaffID(ctx context.Context, staffID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, staffID)
	return nil
}

func (r *availabilityRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]map[string]availability.TagSet)
	return nil
}
