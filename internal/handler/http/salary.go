package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/simon1400/barbitch-admin/internal/domain/salary"
	"github.com/simon1400/barbitch-admin/internal/domain/user"
	"github.com/simon1400/barbitch-admin/internal/handler/http/response"
)

type SalaryHandler interface {
	GetSalaries(w http.ResponseWriter, r *http.Request)
	GetMasterCabinet(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

// GetSalaries implements SalaryHandler.
func (h *SalaryHandlerImpl) GetSalaries(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.salaryService.Salaries(r.Context(), month)
	if err != nil {
		slog.Error("GetSalaries service error", "error", err, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMasterCabinet implements SalaryHandler. Owners may open any
// cabinet; everyone else only their own.
func (h *SalaryHandlerImpl) GetMasterCabinet(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	month := r.URL.Query().Get("month")

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, user.ErrStaffAccessRequired)
		return
	}

	role, _ := claims["role"].(string)
	if role != string(user.RoleOwner) {
		ownStaffID, _ := claims["staff_id"].(string)
		if ownStaffID == "" || ownStaffID != staffID {
			response.Forbidden(w, "You may only open your own cabinet")
			return
		}
	}

	result, err := h.salaryService.MasterCabinet(r.Context(), staffID, month)
	if err != nil {
		slog.Error("GetMasterCabinet service error", "error", err, "staff_id", staffID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
