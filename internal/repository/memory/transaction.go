package memory

import (
	"context"
	"sync"
)

// Transactor serialises multi-repository operations against the in-memory
// stores. Each repository call is atomic on its own; holding this lock keeps
// two cascades or wipes from interleaving. There is no rollback.
type Transactor struct {
	mu sync.Mutex
}

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}
