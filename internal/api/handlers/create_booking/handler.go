package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/campus-facility-booking/internal/api/handlers"
	"github.com/m04kA/campus-facility-booking/internal/domain"
	"github.com/m04kA/campus-facility-booking/internal/service/bookings/models"
	createBooking "github.com/m04kA/campus-facility-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgFacilityNotFound   = "помещение не найдено"
	msgCapacityExceeded   = "количество участников превышает вместимость помещения"
	msgInvalidInterval    = "время начала должно быть раньше времени окончания"
	msgSlotNotAvailable   = "выбранный интервал пересекается с другим бронированием"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var conflictErr *domain.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Scheduling conflict: facility_id=%s, conflicts=%d",
				req.FacilityID, len(conflictErr.Conflicts))
			handlers.RespondSchedulingConflict(w, msgSlotNotAvailable,
				models.FromDomainConflicts(conflictErr.Conflicts),
				models.FromDomainIntervals(conflictErr.Suggestions))

		case errors.Is(err, createBooking.ErrFacilityNotFound):
			h.logger.Warn("POST /bookings - Facility not found: facility_id=%s", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: facility_id=%s, attendees=%d", req.FacilityID, req.Attendees)
			handlers.RespondUnprocessable(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: facility_id=%s", req.FacilityID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: facility_id=%s, requester_id=%s, error=%v",
				req.FacilityID, req.Requester.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, facility_id=%s, status=%s",
		result.ID, result.FacilityID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
