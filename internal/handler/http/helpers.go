package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/timeutil"
)

// currentIdentity answers 401 itself when the request carries no caller.
func currentIdentity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return auth.Identity{}, false
	}
	return identity, true
}

// weekStartParam reads ?week=YYYY-MM-DD as the Monday of the week containing
// that date. A missing value means the current week.
func weekStartParam(r *http.Request, now time.Time) (time.Time, bool) {
	raw := r.URL.Query().Get("week")
	if raw == "" {
		return timeutil.StartOfWeek(now), true
	}
	day, err := timeutil.ParseDayKey(raw)
	if err != nil {
		return time.Time{}, false
	}
	return timeutil.StartOfWeek(day), true
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// getBoolQueryParam gets a bool query parameter with a default value
func getBoolQueryParam(r *http.Request, key string, defaultVal bool) bool {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	return val == "true" || val == "1"
}
