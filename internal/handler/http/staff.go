package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ChangeOwnPIN(w http.ResponseWriter, r *http.Request)
	ResetPIN(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &staffHandlerImpl{staffService: staffService}
}

// List serves the public directory, or the full one for ?full=true callers
// holding staff.CapabilityDirectoryViewFull.
func (h *staffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if !getBoolQueryParam(r, "full", false) {
		profiles, err := h.staffService.ListPublic(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, profiles)
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	if !staff.CanViewFullDirectory(identity.Role) {
		response.HandleError(w, staff.ErrInsufficientPermission)
		return
	}

	profiles, err := h.staffService.ListFull(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profiles)
}

func (h *staffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staff.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateStaff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateStaff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, staff.CreateStaffResponse{
		Message: "User created",
		User:    staff.ToPublicProfile(profile),
	})
}

func (h *staffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req staff.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStaff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.staffService.Update(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		slog.Error("UpdateStaff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated")
}

func (h *staffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.staffService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteStaff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted")
}

func (h *staffHandlerImpl) ChangeOwnPIN(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req staff.ChangePINRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangePIN decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.staffService.ChangeOwnPIN(r.Context(), identity.ID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "PIN updated")
}

func (h *staffHandlerImpl) ResetPIN(w http.ResponseWriter, r *http.Request) {
	newPIN, err := h.staffService.ResetPIN(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("ResetPIN service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, staff.ResetPINResponse{
		Message: "PIN reset",
		NewPIN:  newPIN,
	})
}
