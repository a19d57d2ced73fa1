package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/simon1400/barbitch-admin/internal/domain/report"
	"github.com/simon1400/barbitch-admin/internal/handler/http/response"
)

type ReportHandler interface {
	GetSalariesReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// GetSalariesReport implements ReportHandler.
func (h *ReportHandlerImpl) GetSalariesReport(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	file, err := h.reportService.SalariesWorkbook(r.Context(), month)
	if err != nil {
		slog.Error("GetSalariesReport service error", "error", err, "month", month)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		slog.Error("GetSalariesReport write error", "error", err)
	}
}
