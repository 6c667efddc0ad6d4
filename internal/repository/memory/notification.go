package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/notification"
	"github.com/google/uuid"
)

type notificationRepository struct {
	mu     sync.RWMutex
	byUser map[string][]notification.Notification
}

func NewNotificationRepository() notification.Repository {
	return &notificationRepository{byUser: make(map[string][]notification.Notification)}
}

func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	r.byUser[n.RecipientID] = append(r.byUser[n.RecipientID], n)
	return nil
}

func (r *notificationRepository) GetByRecipient(ctx context.Context, recipientID string, limit int) ([]notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := append([]notification.Notification(nil), r.byUser[recipientID]...)
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.byUser[recipientID] {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, recipientID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.byUser[recipientID] {
		if n.ID != id {
			continue
		}
		if !n.IsRead {
			now := time.Now()
			r.byUser[recipientID][i].IsRead = true
			r.byUser[recipientID][i].ReadAt = &now
		}
		return nil
	}
	return notification.ErrNotificationNotFound
}

func (r *notificationRepository) DeleteByRecipient(ctx context.Context, recipientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byUser, recipientID)
	return nil
}

func (r *notificationRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser = make(map[string][]notification.Notification)
	return nil
}
