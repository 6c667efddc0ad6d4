package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/security"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository/memory"
	authService "github.com/cmlabs-hris/rota-backend-go/internal/service/auth"
	availabilityService "github.com/cmlabs-hris/rota-backend-go/internal/service/availability"
	dataService "github.com/cmlabs-hris/rota-backend-go/internal/service/data"
	holidayService "github.com/cmlabs-hris/rota-backend-go/internal/service/holiday"
	homeService "github.com/cmlabs-hris/rota-backend-go/internal/service/home"
	notificationService "github.com/cmlabs-hris/rota-backend-go/internal/service/notification"
	reportService "github.com/cmlabs-hris/rota-backend-go/internal/service/report"
	rotaService "github.com/cmlabs-hris/rota-backend-go/internal/service/rota"
	staffService "github.com/cmlabs-hris/rota-backend-go/internal/service/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const handlerTestSecret = "test-secret-key-for-jwt"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repos := memory.NewSet()
	hasher := security.NewPINHasher(bcrypt.MinCost)
	data := dataService.NewDataService(repos, hasher)
	require.NoError(t, data.EnsureSeeded(context.Background()))

	jwtSvc := jwt.NewJWTService(handlerTestSecret, "1h")
	notifier := notificationService.NewNotificationService(repos.Notifications, sse.NewHub(10))
	staffSvc := staffService.NewStaffService(repos, hasher, notifier)
	rotaSvc := rotaService.NewRotaService(repos.Shifts, staffSvc, notifier)
	authSvc := authService.NewAuthService(staffSvc, jwtSvc)

	handlers := Handlers{
		Auth:         NewAuthHandler(authSvc),
		Staff:        NewStaffHandler(staffSvc),
		Rota:         NewRotaHandler(rotaSvc),
		Availability: NewAvailabilityHandler(availabilityService.NewAvailabilityService(repos.Availability, staffSvc)),
		Holiday:      NewHolidayHandler(holidayService.NewHolidayService(repos.Holidays, staffSvc, notifier)),
		Report:       NewReportHandler(reportService.NewReportService(repos.Staff, repos.Shifts)),
		Home:         NewHomeHandler(homeService.NewHomeService(rotaSvc, repos.Holidays, repos.Availability, notifier)),
		Notification: NewNotificationHandler(notifier, authSvc),
		Data:         NewDataHandler(data),
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewRouter(logger, RouterOptions{AppName: "rota-test"}, jwtSvc, handlers)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func login(t *testing.T, h http.Handler, userID, pin string) string {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{"userId": userID, "pin": pin})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, _ := decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Success returns token and identity", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{"userId": "user-foh-002", "pin": "1234"})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["token"])
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "user-foh-002", user["id"])
		assert.Equal(t, "FOH", user["role"])
		assert.Equal(t, "John Doe", user["name"])
	})

	t.Run("Wrong PIN is 401", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{"userId": "user-foh-002", "pin": "0000"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeBody(t, rec)["code"])
	})

	t.Run("Malformed PIN is 401", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{"userId": "user-foh-002", "pin": "12"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid user or PIN", decodeBody(t, rec)["message"])
	})
}

func TestLogout_RevokesToken(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "user-foh-002", "1234")

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodGet, "/api/auth/session", token, nil).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/auth/logout", token, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodGet, "/api/auth/session", token, nil).Code)
}

func TestListUsers(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Public list needs no token and hides wages", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/users", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var users []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		require.Len(t, users, 3)
		for _, u := range users {
			assert.NotContains(t, u, "wage")
			assert.NotContains(t, u, "pin")
		}
	})

	t.Run("Full list without token is 401", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodGet, "/api/users?full=true", "", nil).Code)
	})

	t.Run("Full list for staff is 403", func(t *testing.T) {
		token := login(t, router, "user-foh-002", "1234")
		assert.Equal(t, http.StatusForbidden, doJSON(t, router, http.MethodGet, "/api/users?full=true", token, nil).Code)
	})

	t.Run("Full list for owner includes wages", func(t *testing.T) {
		token := login(t, router, "user-owner-001", "0000")
		rec := doJSON(t, router, http.MethodGet, "/api/users?full=true", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var users []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		require.Len(t, users, 3)
		assert.Contains(t, users[0], "wage")
	})
}

func TestCreateUser(t *testing.T) {
	router := newTestRouter(t)
	owner := login(t, router, "user-owner-001", "0000")
	payload := map[string]interface{}{"name": "Lyndsey", "gender": "female", "role": "Manager", "wage": "15.00"}

	rec := doJSON(t, router, http.MethodPost, "/api/users", owner, payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "Lyndsey", body["user"].(map[string]interface{})["name"])

	payload["name"] = "LYNDSEY"
	assert.Equal(t, http.StatusConflict, doJSON(t, router, http.MethodPost, "/api/users", owner, payload).Code)

	staffToken := login(t, router, "user-foh-002", "1234")
	payload["name"] = "Someone Else"
	assert.Equal(t, http.StatusForbidden, doJSON(t, router, http.MethodPost, "/api/users", staffToken, payload).Code)
}

func TestUpdateUser_OwnerCannotBeDemoted(t *testing.T) {
	router := newTestRouter(t)
	owner := login(t, router, "user-owner-001", "0000")
	payload := map[string]interface{}{"name": "Site Owner", "gender": "other", "role": "FOH", "wage": "0"}

	rec := doJSON(t, router, http.MethodPut, "/api/users/user-owner-001", owner, payload)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
	assert.Equal(t, "owner accounts cannot change role", decodeBody(t, rec)["message"])

	owner = login(t, router, "user-owner-001", "0000")
	created := map[string]interface{}{"name": "Lyndsey", "gender": "female", "role": "Manager", "wage": "15.00"}
	assert.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/users", owner, created).Code)
}

func TestSession_DeletedProfileIsUnauthorized(t *testing.T) {
	router := newTestRouter(t)
	owner := login(t, router, "user-owner-001", "0000")
	token := login(t, router, "user-foh-002", "1234")

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodGet, "/api/auth/session", token, nil).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodDelete, "/api/users/user-foh-002", owner, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodGet, "/api/auth/session", token, nil).Code)
}

func TestChangeOwnPIN(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "user-boh-003", "5678")

	rec := doJSON(t, router, http.MethodPatch, "/api/users/me/pin", token, map[string]string{"currentPin": "1111", "newPin": "4321"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/users/me/pin", token, map[string]string{"currentPin": "5678", "newPin": "43"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/users/me/pin", token, map[string]string{"currentPin": "5678", "newPin": "4321"})
	require.Equal(t, http.StatusOK, rec.Code)
	login(t, router, "user-boh-003", "4321")
}

func TestResetPIN_UnknownUser(t *testing.T) {
	router := newTestRouter(t)
	owner := login(t, router, "user-owner-001", "0000")

	rec := doJSON(t, router, http.MethodPatch, "/api/users/user-foh-999/pin", owner, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/users/user-foh-002/pin", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	newPIN, _ := decodeBody(t, rec)["newPin"].(string)
	assert.Len(t, newPIN, 4)
	login(t, router, "user-foh-002", newPIN)
}

func TestRotaAndWages(t *testing.T) {
	router := newTestRouter(t)
	owner := login(t, router, "user-owner-001", "0000")
	staffToken := login(t, router, "user-foh-002", "1234")

	shift := map[string]string{"staffId": "user-boh-003", "timeRange": "09:00-17:00"}
	assert.Equal(t, http.StatusForbidden, doJSON(t, router, http.MethodPut, "/api/rota/2025-06-09/shifts", staffToken, shift).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPut, "/api/rota/2025-06-09/shifts", owner, shift).Code)

	rec := doJSON(t, router, http.MethodGet, "/api/rota?week=2025-06-11", staffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var week map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &week))
	assert.Len(t, week, 7)
	require.Len(t, week["2025-06-09"], 1)
	assert.Equal(t, "Jane Smith", week["2025-06-09"][0]["staffName"])

	rec = doJSON(t, router, http.MethodGet, "/api/reports/wages?week=2025-06-09", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "£96.00", decodeBody(t, rec)["totalPayDisplay"])

	rec = doJSON(t, router, http.MethodGet, "/api/reports/wages?week=2025-06-09&format=xlsx", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")

	assert.Equal(t, http.StatusForbidden, doJSON(t, router, http.MethodGet, "/api/reports/wages", staffToken, nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodGet, "/api/rota?start=2025-06-10&end=2025-06-01", owner, nil).Code)
}

func TestHolidayDecision(t *testing.T) {
	router := newTestRouter(t)
	owner := login(t, router, "user-owner-001", "0000")
	staffToken := login(t, router, "user-foh-002", "1234")

	rec := doJSON(t, router, http.MethodPost, "/api/holidays", staffToken, map[string]string{"startDate": "2025-07-01", "endDate": "2025-07-03"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPatch, "/api/holidays/1", owner, map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "approved", decodeBody(t, rec)["status"])

	rec = doJSON(t, router, http.MethodPatch, "/api/holidays/1", owner, map[string]string{"status": "denied"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/notifications", staffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decodeBody(t, rec)["unread_count"])
}

func TestAvailabilityAndHome(t *testing.T) {
	router := newTestRouter(t)
	staffToken := login(t, router, "user-foh-002", "1234")

	rec := doJSON(t, router, http.MethodPut, "/api/availability/me/2025-06-09", staffToken, map[string][]string{"tags": {"Morning", "Unavailable"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []interface{}{"Unavailable"}, decodeBody(t, rec)["tags"])

	assert.Equal(t, http.StatusForbidden, doJSON(t, router, http.MethodGet, "/api/availability/day/2025-06-09", staffToken, nil).Code)

	rec = doJSON(t, router, http.MethodGet, "/api/home/widgets", staffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "whoIsWorking")
	assert.Contains(t, body, "tasks")
	assert.Contains(t, body, "messages")
}

func TestWipe(t *testing.T) {
	router := newTestRouter(t)
	owner := login(t, router, "user-owner-001", "0000")

	rec := doJSON(t, router, http.MethodPost, "/api/users", owner, map[string]interface{}{"name": "Lyndsey", "gender": "female", "role": "Manager", "wage": "15.00"})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["user"].(map[string]interface{})["id"].(string)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPatch, "/api/users/"+id+"/pin", owner, nil).Code)

	staffToken := login(t, router, "user-foh-002", "1234")
	assert.Equal(t, http.StatusForbidden, doJSON(t, router, http.MethodDelete, "/api/data/wipe", staffToken, nil).Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/data/wipe", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, decodeBody(t, rec)["staff"])

	rec = doJSON(t, router, http.MethodGet, "/api/users", "", nil)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 3)
}

func TestEventsRequiresToken(t *testing.T) {
	router := newTestRouter(t)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodGet, "/api/events", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodGet, "/api/events?token=garbage", "", nil).Code)
}
