package notification

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, n Notification) error
	// GetByRecipient returns the newest notifications first.
	GetByRecipient(ctx context.Context, recipientID string, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	MarkAsRead(ctx context.Context, recipientID, id string) error
	DeleteByRecipient(ctx context.Context, recipientID string) error
	Reset(ctx context.Context) error
}
