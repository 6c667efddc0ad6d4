package notification

import (
	"context"

	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/sse"
)

// Service stores notifications and pushes them to connected clients.
type Service interface {
	Notify(ctx context.Context, req CreateNotificationRequest) error
	List(ctx context.Context, userID string, limit int) (NotificationListResponse, error)
	MarkAsRead(ctx context.Context, userID, id string) error
	Subscribe(userID string) (chan sse.Event, func())
}
