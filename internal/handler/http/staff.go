package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/simon1400/barbitch-admin/internal/domain/staff"
	"github.com/simon1400/barbitch-admin/internal/handler/http/response"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.staffService.List(r.Context())
	if err != nil {
		slog.Error("List staff service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Get implements StaffHandler.
func (h *StaffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.staffService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get staff service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements StaffHandler.
func (h *StaffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staff.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create staff service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Staff member created", result)
}

// Update implements StaffHandler.
func (h *StaffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req staff.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.staffService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Update staff service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements StaffHandler.
func (h *StaffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.staffService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete staff service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staff member deleted", nil)
}
