package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	bookingRepo "github.com/m04kA/campus-facility-booking/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/campus-facility-booking/internal/infra/storage/facility"
	"github.com/m04kA/campus-facility-booking/internal/scheduling"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	txManager    TransactionManager
	locker       Locker
	metrics      MetricsRecorder
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	txManager TransactionManager,
	locker Locker,
	metrics MetricsRecorder,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		txManager:    txManager,
		locker:       locker,
		metrics:      metrics,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case изменения бронирования
// При смене времени пересечения ищутся без учета самого бронирования, стоимость пересчитывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%s", req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		uc.metrics.BookingRejected("update", "invalid_input")
		return nil, err
	}

	// 2. Находим бронирование, чтобы узнать помещение для блокировки
	current, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	facility, err := uc.facilityRepo.GetByID(ctx, current.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("UpdateBooking: facility id=%s of booking id=%s not found", current.FacilityID, current.ID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get facility id=%s: %v", current.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	unlock := uc.locker.Lock(facility.ID)
	defer unlock()

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Перечитываем под блокировкой
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		if !booking.CanBeModified() {
			uc.logger.Warn("UpdateBooking: booking id=%s has status=%s and cannot be modified", booking.ID, booking.Status)
			uc.metrics.BookingRejected("update", "not_modifiable")
			return fmt.Errorf("%w: status %s", ErrNotModifiable, booking.Status)
		}

		updated := applyChanges(booking, req)

		// 4. Интервал
		if !updated.Interval().IsValid() {
			uc.logger.Warn("UpdateBooking: invalid interval %s - %s", updated.StartTime, updated.EndTime)
			uc.metrics.BookingRejected("update", "invalid_interval")
			return ErrInvalidInterval
		}

		// 5. Вместимость
		if req.Attendees != nil && !facility.FitsAttendees(updated.Attendees) {
			uc.logger.Warn("UpdateBooking: %d attendees exceed capacity %d of facility id=%s",
				updated.Attendees, facility.Capacity, facility.ID)
			uc.metrics.BookingRejected("update", "capacity_exceeded")
			return fmt.Errorf("%w: %d > %d", ErrCapacityExceeded, updated.Attendees, facility.Capacity)
		}

		// 6. Пересечения при смене времени
		if req.changesTime() {
			requested := updated.Interval()
			window := scheduling.SearchWindow(requested, uc.settings.Grid)
			snapshot, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
				FacilityID: &facility.ID,
				Window:     &window,
				ActiveOnly: true,
			})
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			conflicts := scheduling.FindConflicts(snapshot, facility.ID, requested, booking.ID)
			if len(conflicts) > 0 {
				uc.logger.Warn("UpdateBooking: %d conflicts for booking id=%s, first with booking id=%s",
					len(conflicts), booking.ID, conflicts[0].Booking.ID)
				return &domain.ConflictError{
					Err:         ErrSchedulingConflict,
					Conflicts:   conflicts,
					Suggestions: scheduling.SuggestAlternatives(snapshot, facility.ID, requested, booking.ID, uc.settings.Grid, uc.settings.MaxSuggestions),
				}
			}

			updated.Cost = scheduling.CalculateCost(facility.HourlyRate, requested)
		}

		updated.UpdatedAt = uc.timeProvider.Now().UTC()

		if err := uc.bookingRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSchedulingConflict) {
			uc.metrics.BookingRejected("update", "conflict")
		}
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%s, cost=%.2f", result.ID, result.Cost)
	return fromDomain(result), nil
}

func (uc *UseCase) getBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}
