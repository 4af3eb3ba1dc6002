package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/campus-facility-booking/internal/api/handlers"
	"github.com/m04kA/campus-facility-booking/internal/domain"
	"github.com/m04kA/campus-facility-booking/internal/service/bookings/models"
	updateBooking "github.com/m04kA/campus-facility-booking/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgFacilityNotFound   = "помещение не найдено"
	msgNotModifiable      = "отмененное или завершенное бронирование нельзя изменить"
	msgCapacityExceeded   = "количество участников превышает вместимость помещения"
	msgInvalidInterval    = "время начала должно быть раньше времени окончания"
	msgSlotNotAvailable   = "выбранный интервал пересекается с другим бронированием"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		var conflictErr *domain.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PATCH /bookings/{id} - Scheduling conflict: booking_id=%s, conflicts=%d",
				bookingID, len(conflictErr.Conflicts))
			handlers.RespondSchedulingConflict(w, msgSlotNotAvailable,
				models.FromDomainConflicts(conflictErr.Conflicts),
				models.FromDomainIntervals(conflictErr.Suggestions))

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrFacilityNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Facility not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, updateBooking.ErrNotModifiable):
			h.logger.Warn("PATCH /bookings/{id} - Booking not modifiable: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNotModifiable)

		case errors.Is(err, updateBooking.ErrCapacityExceeded):
			h.logger.Warn("PATCH /bookings/{id} - Capacity exceeded: booking_id=%s", bookingID)
			handlers.RespondUnprocessable(w, msgCapacityExceeded)

		case errors.Is(err, updateBooking.ErrInvalidInterval):
			h.logger.Warn("PATCH /bookings/{id} - Invalid interval: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
