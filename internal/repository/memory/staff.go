package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
)

type staffRepository struct {
	mu       sync.RWMutex
	profiles map[string]staff.Profile
	next     int64
}

func NewStaffRepository() staff.StaffRepository {
	return &staffRepository{
		profiles: make(map[string]staff.Profile),
		next:     1,
	}
}

func (r *staffRepository) List(ctx context.Context) ([]staff.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return staff.Profile{}, staff.ErrStaffNotFound
	}
	return p, nil
}

func (r *staffRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nameTaken(name, excludeID), nil
}

func (r *staffRepository) nameTaken(name, excludeID string) bool {
	for id, p := range r.profiles {
		if id != excludeID && strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

func (r *staffRepository) NextSequence(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seq := r.next
	r.next++
	return seq, nil
}

func (r *staffRepository) Create(ctx context.Context, profile staff.Profile) (staff.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[profile.ID]; exists {
		return staff.Profile{}, fmt.Errorf("staff id %s already exists", profile.ID)
	}
	if r.nameTaken(profile.Name, "") {
		return staff.Profile{}, staff.ErrDuplicateName
	}
	r.profiles[profile.ID] = profile
	return profile, nil
}

func (r *staffRepository) Update(ctx context.Context, profile staff.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.profiles[profile.ID]
	if !ok {
		return staff.ErrStaffNotFound
	}
	if r.nameTaken(profile.Name, profile.ID) {
		return staff.ErrDuplicateName
	}
	profile.PINHash = current.PINHash
	profile.CreatedAt = current.CreatedAt
	r.profiles[profile.ID] = profile
	return nil
}

func (r *staffRepository) UpdatePINHash(ctx context.Context, id, pinHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return staff.ErrStaffNotFound
	}
	p.PINHash = pinHash
	r.profiles[id] = p
	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[id]; !ok {
		return staff.ErrStaffNotFound
	}
	delete(r.profiles, id)
	return nil
}

func (r *staffRepository) Reset(ctx context.Context, next int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = make(map[string]staff.Profile)
	r.next = next
	return nil
}
