package http

import (
	"log/slog"
	"net/http"

	"github.com/simon1400/barbitch-admin/internal/domain/expense"
	"github.com/simon1400/barbitch-admin/internal/handler/http/response"
)

type ExpenseHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &ExpenseHandlerImpl{expenseService: expenseService}
}

// List implements ExpenseHandler. The full history is returned when
// all=true, otherwise one month.
func (h *ExpenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("all") == "true" {
		result, err := h.expenseService.ListAll(r.Context())
		if err != nil {
			slog.Error("List expenses service error", "error", err)
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	month := r.URL.Query().Get("month")
	result, err := h.expenseService.ListMonth(r.Context(), month)
	if err != nil {
		slog.Error("List expenses service error", "error", err, "month", month)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
