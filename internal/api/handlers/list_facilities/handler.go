package list_facilities

import (
	"net/http"
	"strconv"

	"github.com/m04kA/campus-facility-booking/internal/api/handlers"
)

const (
	msgInvalidActiveOnly = "некорректное значение activeOnly, ожидается true или false"
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

// Handle GET /api/v1/facilities
// Query params: activeOnly (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := false
	if raw := r.URL.Query().Get("activeOnly"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /facilities - Invalid activeOnly: %v", err)
			handlers.RespondBadRequest(w, msgInvalidActiveOnly)
			return
		}
		activeOnly = parsed
	}

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /facilities - Failed to list facilities: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities - Facilities retrieved successfully: count=%d", len(result.Facilities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
