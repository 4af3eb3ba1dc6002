package get_booking_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/campus-facility-booking/internal/api/handlers"
	"github.com/m04kA/campus-facility-booking/internal/service/bookings"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "дата начала периода позже даты окончания"
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

// Handle GET /api/v1/bookings/stats
// Query params: from, to (optional, YYYY-MM-DD, inclusive)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(query.Get("from"), query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /bookings/stats - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Stats(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInterval) {
			h.logger.Warn("GET /bookings/stats - Invalid period: from=%s, to=%s", query.Get("from"), query.Get("to"))
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /bookings/stats - Failed to compute stats: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/stats - Stats computed: from=%s, to=%s, total=%d",
		result.From, result.To, result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
