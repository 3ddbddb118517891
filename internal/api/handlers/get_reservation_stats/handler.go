package get_reservation_stats

import (
	"net/http"

	"github.com/timisoara-dining/reservation-service/internal/api/handlers"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations/stats - Failed to get stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/stats - Stats retrieved: total=%d, confirmed=%d, pending=%d",
		stats.Total, stats.Confirmed, stats.Pending)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
