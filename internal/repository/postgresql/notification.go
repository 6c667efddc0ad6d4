package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type notificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Create creates a new notification
func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	dataJSON, err := json.Marshal(n.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal notification data: %w", err)
	}

	query := `
		INSERT INTO notifications (id, recipient_id, type, title, message, data, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = q.Exec(ctx, query,
		n.ID,
		n.RecipientID,
		string(n.Type),
		n.Title,
		n.Message,
		dataJSON,
		n.IsRead,
		n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// GetByRecipient returns the newest notifications first; limit <= 0 means all.
func (r *notificationRepository) GetByRecipient(ctx context.Context, recipientID string, limit int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, recipient_id, type, title, message, data, is_read, read_at, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
	`
	args := []interface{}{recipientID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var (
			n        notification.Notification
			dataJSON []byte
		)
		err := rows.Scan(
			&n.ID,
			&n.RecipientID,
			&n.Type,
			&n.Title,
			&n.Message,
			&dataJSON,
			&n.IsRead,
			&n.ReadAt,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		if len(dataJSON) > 0 {
			if err := json.Unmarshal(dataJSON, &n.Data); err != nil {
				return nil, fmt.Errorf("failed to unmarshal notification data: %w", err)
			}
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// CountUnread returns unread notification count for a recipient
func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`, recipientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get unread count: %w", err)
	}

	return count, nil
}

// MarkAsRead marks one of the recipient's notifications as read
func (r *notificationRepository) MarkAsRead(ctx context.Context, recipientID, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = COALESCE(read_at, NOW())
		WHERE id = $1 AND recipient_id = $2
	`
	result, err := q.Exec(ctx, query, id, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

func (r *notificationRepository) DeleteByRecipient(ctx context.Context, recipientID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM notifications WHERE recipient_id = $1`, recipientID); err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}

func (r *notificationRepository) Reset(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM notifications`); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}
