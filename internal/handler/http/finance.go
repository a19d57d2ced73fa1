package http

import (
	"log/slog"
	"net/http"

	"github.com/simon1400/barbitch-admin/internal/domain/finance"
	"github.com/simon1400/barbitch-admin/internal/handler/http/response"
)

type FinanceHandler interface {
	GetMoney(w http.ResponseWriter, r *http.Request)
}

type FinanceHandlerImpl struct {
	financeService finance.FinanceService
}

func NewFinanceHandler(financeService finance.FinanceService) FinanceHandler {
	return &FinanceHandlerImpl{financeService: financeService}
}

// GetMoney implements FinanceHandler.
func (h *FinanceHandlerImpl) GetMoney(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.financeService.Money(r.Context(), month)
	if err != nil {
		slog.Error("GetMoney service error", "error", err, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
