package get_facility

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/campus-facility-booking/internal/api/handlers"
	"github.com/m04kA/campus-facility-booking/internal/service/facilities"
)

const (
	msgInvalidFacilityID = "некорректный ID помещения"
	msgNotFound          = "помещение не найдено"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]

	facility, err := h.service.GetByID(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id} - Facility not found: facility_id=%s", facilityID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, facilities.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id} - Invalid facility ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFacilityID)

		default:
			h.logger.Error("GET /facilities/{id} - Failed to get facility: facility_id=%s, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id} - Facility retrieved successfully: facility_id=%s", facilityID)
	handlers.RespondJSON(w, http.StatusOK, facility)
}
