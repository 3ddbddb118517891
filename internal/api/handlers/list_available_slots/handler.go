package list_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/timisoara-dining/reservation-service/internal/api/handlers"
	listAvailableSlots "github.com/timisoara-dining/reservation-service/internal/usecase/list_available_slots"
)

const (
	msgInvalidWithinDays = "invalid withinDays parameter"
)

type Handler struct {
	useCase ListAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/available
// Query params: withinDays (optional, default 60)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	withinDays := 0

	if raw := r.URL.Query().Get("withinDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /slots/available - Invalid withinDays: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWithinDays)
			return
		}
		withinDays = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &listAvailableSlots.Request{WithinDays: withinDays})
	if err != nil {
		switch {
		case errors.Is(err, listAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWithinDays)

		default:
			h.logger.Error("GET /slots/available - Failed to list slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/available - %d slots retrieved", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
