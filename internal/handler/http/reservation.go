package http

import (
	"log/slog"
	"net/http"

	"github.com/simon1400/barbitch-admin/internal/domain/reservation"
	"github.com/simon1400/barbitch-admin/internal/handler/http/response"
)

type ReservationHandler interface {
	GetMetrics(w http.ResponseWriter, r *http.Request)
}

type ReservationHandlerImpl struct {
	reservationService reservation.ReservationService
}

func NewReservationHandler(reservationService reservation.ReservationService) ReservationHandler {
	return &ReservationHandlerImpl{reservationService: reservationService}
}

// GetMetrics implements ReservationHandler.
func (h *ReservationHandlerImpl) GetMetrics(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.reservationService.Metrics(r.Context(), month)
	if err != nil {
		slog.Error("GetMetrics service error", "error", err, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
