package http

import (
	"log/slog"
	"net/http"

	"github.com/simon1400/barbitch-admin/internal/domain/dashboard"
	"github.com/simon1400/barbitch-admin/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetWeekOverview(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.dashboardService.GetDashboard(r.Context(), month)
	if err != nil {
		slog.Error("GetDashboard service error", "error", err, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWeekOverview implements DashboardHandler.
func (h *DashboardHandlerImpl) GetWeekOverview(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	result, err := h.dashboardService.GetWeekOverview(r.Context(), start, end)
	if err != nil {
		slog.Error("GetWeekOverview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
