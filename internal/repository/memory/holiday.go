package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/holiday"
)

type holidayRepository struct {
	mu       sync.RWMutex
	requests map[int64]holiday.Request
	nextID   int64
}

func NewHolidayRepository() holiday.RequestRepository {
	return &holidayRepository{requests: make(map[int64]holiday.Request), nextID: 1}
}

func (r *holidayRepository) Create(ctx context.Context, request holiday.Request) (holiday.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request.ID = r.nextID
	r.nextID++
	r.requests[request.ID] = request
	return request, nil
}

func (r *holidayRepository) GetByID(ctx context.Context, id int64) (holiday.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return holiday.Request{}, holiday.ErrRequestNotFound
	}
	return req, nil
}

func (r *holidayRepository) GetByStaffID(ctx context.Context, staffID string) ([]holiday.Request, error) {
	return r.filter(func(req holiday.Request) bool { return req.StaffID == staffID }), nil
}

func (r *holidayRepository) GetByStatus(ctx context.Context, status holiday.Status) ([]holiday.Request, error) {
	return r.filter(func(req holiday.Request) bool { return req.Status == status }), nil
}

// filter returns matching requests oldest first.
func (r *holidayRepository) filter(keep func(holiday.Request) bool) []holiday.Request {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]holiday.Request, 0)
	for _, req := range r.requests {
		if keep(req) {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *holidayRepository) UpdateStatus(ctx context.Context, id int64, status holiday.Status, decidedBy string, decidedAt time.Time) (holiday.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return holiday.Request{}, holiday.ErrRequestNotFound
	}
	if !req.IsPending() {
		return holiday.Request{}, holiday.ErrInvalidState
	}
	req.Status = status
	req.DecidedBy = &decidedBy
	req.DecidedAt = &decidedAt
	r.requests[id] = req
	return req, nil
}

func (r *holidayRepository) DeleteByStaffID(ctx context.Context, staffID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, req := range r.requests {
		if req.StaffID == staffID {
			delete(r.requests, id)
		}
	}
	return nil
}

func (r *holidayRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = make(map[int64]holiday.Request)
	r.nextID = 1
	return nil
}
