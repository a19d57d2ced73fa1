package http

import (
	"log/slog"
	"net/http"

	"github.com/simon1400/barbitch-admin/internal/domain/procedure"
	"github.com/simon1400/barbitch-admin/internal/handler/http/response"
)

type ProcedureHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type ProcedureHandlerImpl struct {
	procedureService procedure.ProcedureService
}

func NewProcedureHandler(procedureService procedure.ProcedureService) ProcedureHandler {
	return &ProcedureHandlerImpl{procedureService: procedureService}
}

// GetStats implements ProcedureHandler.
func (h *ProcedureHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.procedureService.Stats(r.Context(), month)
	if err != nil {
		slog.Error("GetStats service error", "error", err, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
