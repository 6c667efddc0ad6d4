package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService}
}

func (h *holidayHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req holiday.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = identity.ID

	resp, err := h.holidayService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, resp)
}

func (h *holidayHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	resp, err := h.holidayService.ListForStaff(r.Context(), identity.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *holidayHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.holidayService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *holidayHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req holiday.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	// An unparsable id stays 0 and fails validation.
	req.RequestID, _ = strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	req.DeciderID = identity.ID

	resp, err := h.holidayService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
