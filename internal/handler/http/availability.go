package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/availability"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AvailabilityHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	SetMine(w http.ResponseWriter, r *http.Request)
	ForStaff(w http.ResponseWriter, r *http.Request)
	OnDay(w http.ResponseWriter, r *http.Request)
}

type availabilityHandlerImpl struct {
	availabilityService availability.AvailabilityService
	now                 func() time.Time
}

func NewAvailabilityHandler(availabilityService availability.AvailabilityService) AvailabilityHandler {
	return &availabilityHandlerImpl{availabilityService: availabilityService, now: time.Now}
}

func (h *availabilityHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}
	h.week(w, r, identity.ID)
}

func (h *availabilityHandlerImpl) ForStaff(w http.ResponseWriter, r *http.Request) {
	h.week(w, r, chi.URLParam(r, "staffId"))
}

func (h *availabilityHandlerImpl) week(w http.ResponseWriter, r *http.Request, staffID string) {
	weekStart, ok := weekStartParam(r, h.now())
	if !ok {
		response.HandleError(w, availability.ErrInvalidDayKey)
		return
	}

	resp, err := h.availabilityService.WeekView(r.Context(), staffID, weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *availabilityHandlerImpl) SetMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req availability.SetDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetAvailability decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = identity.ID
	req.DayKey = chi.URLParam(r, "dayKey")

	resp, err := h.availabilityService.SetDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *availabilityHandlerImpl) OnDay(w http.ResponseWriter, r *http.Request) {
	dayKey := chi.URLParam(r, "dayKey")

	ids, err := h.availabilityService.StaffAvailableOn(r.Context(), dayKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, availability.AvailableStaffResponse{DayKey: dayKey, StaffIDs: ids})
}
