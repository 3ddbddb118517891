package update_reservation_status

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/timisoara-dining/reservation-service/internal/api/handlers"
	"github.com/timisoara-dining/reservation-service/internal/service/reservations"
)

const (
	msgInvalidReservationID = "invalid reservation ID"
	msgInvalidRequestBody   = "invalid request body"
	msgNotFound             = "reservation not found"
	msgConflict             = "Reservation status has changed, refresh and try again"
	msgUpdateFailed         = "Failed to update status"
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

// Handle PATCH /api/v1/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]

	if _, err := uuid.Parse(reservationID); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.UpdateStatus(r.Context(), reservationID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid transition: id=%s, %s -> %s",
				reservationID, req.CurrentStatus, req.Status)
			handlers.RespondBadRequest(w,
				fmt.Sprintf("Cannot change status from %s to %s", req.CurrentStatus, req.Status))

		case errors.Is(err, reservations.ErrConflict):
			h.logger.Warn("PATCH /reservations/{id}/status - Stale status: id=%s, expected %s",
				reservationID, req.CurrentStatus)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed to update status: id=%s, error=%v",
				reservationID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgUpdateFailed)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Status updated successfully: id=%s, %s -> %s",
		reservationID, req.CurrentStatus, req.Status)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
