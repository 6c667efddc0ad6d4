package home

import (
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/rota"
)

type TaskKind string

const (
	TaskDecideHolidays     TaskKind = "decide_holidays"
	TaskSetAvailability    TaskKind = "set_availability"
	TaskHolidayAwaiting    TaskKind = "holiday_awaiting_decision"
	TaskUnreadNotification TaskKind = "unread_notifications"
)

// Task is a to-do derived from the stores; nothing is persisted for it.
type Task struct {
	Kind  TaskKind `json:"kind"`
	Title string   `json:"title"`
	Count int      `json:"count"`
}

// WidgetsResponse feeds the three home screen widgets.
type WidgetsResponse struct {
	Today        string                              `json:"today"`
	WhoIsWorking []rota.ShiftResponse                `json:"whoIsWorking"`
	Tasks        []Task                              `json:"tasks"`
	Messages     []notification.NotificationResponse `json:"messages"`
}
