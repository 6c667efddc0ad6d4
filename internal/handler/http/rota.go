package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/rota"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/timeutil"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type RotaHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
}

type rotaHandlerImpl struct {
	rotaService rota.RotaService
	now         func() time.Time
}

func NewRotaHandler(rotaService rota.RotaService) RotaHandler {
	return &rotaHandlerImpl{rotaService: rotaService, now: time.Now}
}

// Get returns the dayKey to shifts mapping for ?start=&end=, ?week= or the
// current week.
func (h *rotaHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var start, end time.Time
	if query.Get("start") != "" || query.Get("end") != "" {
		var err error
		if start, err = timeutil.ParseDayKey(query.Get("start")); err != nil {
			response.HandleError(w, rota.ErrInvalidDayKey)
			return
		}
		if end, err = timeutil.ParseDayKey(query.Get("end")); err != nil {
			response.HandleError(w, rota.ErrInvalidDayKey)
			return
		}
	} else {
		weekStart, ok := weekStartParam(r, h.now())
		if !ok {
			response.HandleError(w, rota.ErrInvalidDayKey)
			return
		}
		start, end = weekStart, weekStart.AddDate(0, 0, 6)
	}

	resp, err := h.rotaService.ShiftsInRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *rotaHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	month := h.now()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, ok := validator.IsValidMonth(raw)
		if !ok {
			response.HandleError(w, rota.ErrInvalidMonth)
			return
		}
		month = parsed
	}

	resp, err := h.rotaService.MonthCalendar(r.Context(), month.Year(), month.Month())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *rotaHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req rota.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.DayKey = chi.URLParam(r, "dayKey")

	shift, err := h.rotaService.Assign(r.Context(), req)
	if err != nil {
		slog.Error("AssignShift service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, shift)
}

func (h *rotaHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	err := h.rotaService.Unassign(r.Context(), chi.URLParam(r, "dayKey"), chi.URLParam(r, "staffId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift removed")
}
