package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const streamKeepalive = 30 * time.Second

// NotificationHandler defines the notification handler interface
type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notifService notification.Service
	authService  auth.AuthService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifService notification.Service, authService auth.AuthService) NotificationHandler {
	return &notificationHandlerImpl{
		notifService: notifService,
		authService:  authService,
	}
}

// List returns the caller's latest notifications, ?limit= capped by the service
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	result, err := h.notifService.List(r.Context(), identity.ID, getIntQueryParam(r, "limit", 0))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkAsRead marks one notification as read
func (h *notificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	if err := h.notifService.MarkAsRead(r.Context(), identity.ID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read")
}

// Stream handles SSE connection for real-time notifications
func (h *notificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// EventSource cannot send headers, so the token travels in the query.
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		response.Unauthorized(w, "Missing token")
		return
	}

	identity, err := h.authService.ValidateSSEToken(r.Context(), tokenStr)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.notifService.Subscribe(identity.ID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":%q}\n\n", identity.ID)
	flusher.Flush()

	keepalive := time.NewTicker(streamKeepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
