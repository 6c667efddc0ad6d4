package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/sse"
	"github.com/google/uuid"
)

const (
	EventNotification = "notification"
	defaultListLimit  = 20
	maxListLimit      = 100
)

type service struct {
	repo notification.Repository
	hub  *sse.Hub
	now  func() time.Time
}

// NewNotificationService stores each notification and pushes it to the
// recipient's open event streams.
func NewNotificationService(repo notification.Repository, hub *sse.Hub) notification.Service {
	return &service{repo: repo, hub: hub, now: time.Now}
}

func (s *service) Notify(ctx context.Context, req notification.CreateNotificationRequest) error {
	n := notification.Notification{
		ID:          uuid.New().String(),
		RecipientID: req.RecipientID,
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		Data:        req.Data,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	s.hub.Publish(n.RecipientID, sse.Event{
		Event: EventNotification,
		Data:  notification.ToResponse(n),
	})
	slog.Debug("Notification sent", "recipient_id", n.RecipientID, "type", n.Type)
	return nil
}

func (s *service) List(ctx context.Context, userID string, limit int) (notification.NotificationListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	list, err := s.repo.GetByRecipient(ctx, userID, limit)
	if err != nil {
		return notification.NotificationListResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return notification.NotificationListResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	resp := notification.NotificationListResponse{
		Notifications: make([]notification.NotificationResponse, 0, len(list)),
		UnreadCount:   unread,
	}
	for _, n := range list {
		resp.Notifications = append(resp.Notifications, notification.ToResponse(n))
	}
	return resp, nil
}

func (s *service) MarkAsRead(ctx context.Context, userID, id string) error {
	return s.repo.MarkAsRead(ctx, userID, id)
}

func (s *service) Subscribe(userID string) (chan sse.Event, func()) {
	return s.hub.Subscribe(userID)
}
