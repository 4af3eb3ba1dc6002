package check_conflicts

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/campus-facility-booking/internal/api/handlers"
	"github.com/m04kA/campus-facility-booking/internal/service/bookings"
)

const (
	msgMissingInterval  = "параметры start и end обязательны"
	msgInvalidTime      = "некорректный формат времени, ожидается RFC3339"
	msgInvalidInterval  = "время начала должно быть раньше времени окончания"
	msgFacilityNotFound = "помещение не найдено"
	msgInvalidRequest   = "некорректный запрос"
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

// Handle GET /api/v1/facilities/{facilityId}/conflicts
// Query params: start, end (required, RFC3339), excludeBookingId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]
	query := r.URL.Query()

	startStr, endStr := query.Get("start"), query.Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /facilities/{id}/conflicts - Missing start or end")
		handlers.RespondBadRequest(w, msgMissingInterval)
		return
	}

	serviceReq, err := ToServiceRequest(facilityID, startStr, endStr, query.Get("excludeBookingId"))
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/conflicts - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.CheckConflicts(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/conflicts - Facility not found: facility_id=%s", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, bookings.ErrInvalidInterval):
			h.logger.Warn("GET /facilities/{id}/conflicts - Invalid interval: %s - %s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/conflicts - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /facilities/{id}/conflicts - Failed to check conflicts: facility_id=%s, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/conflicts - Conflicts checked: facility_id=%s, conflicts=%d",
		facilityID, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
