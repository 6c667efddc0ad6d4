package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeShiftAssigned    NotificationType = "shift_assigned"
	TypeShiftRemoved     NotificationType = "shift_removed"
	TypeHolidayRequested NotificationType = "holiday_requested"
	TypeHolidayApproved  NotificationType = "holiday_approved"
	TypeHolidayDenied    NotificationType = "holiday_denied"
	TypePINReset         NotificationType = "pin_reset"
)

// Notification is a message shown in the recipient's home feed.
type Notification struct {
	ID          string
	RecipientID string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
