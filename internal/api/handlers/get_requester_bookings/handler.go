package get_requester_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/campus-facility-booking/internal/api/handlers"
	"github.com/m04kA/campus-facility-booking/internal/service/bookings"
)

const (
	msgInvalidRequest = "некорректный ID заявителя или статус"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/requesters/{requesterId}/bookings
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID := mux.Vars(r)["requesterId"]

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	result, err := h.service.ListByRequester(r.Context(), requesterID, statusPtr)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /requesters/{id}/bookings - Invalid request: requester_id=%s, error=%v", requesterID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}
		h.logger.Error("GET /requesters/{id}/bookings - Failed to get bookings: requester_id=%s, error=%v",
			requesterID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /requesters/{id}/bookings - Bookings retrieved successfully: requester_id=%s, count=%d",
		requesterID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
