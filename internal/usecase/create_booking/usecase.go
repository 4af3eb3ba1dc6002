package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	facilityRepo "github.com/m04kA/campus-facility-booking/internal/infra/storage/facility"
	"github.com/m04kA/campus-facility-booking/internal/scheduling"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	txManager    TransactionManager
	locker       Locker
	idGenerator  IDGenerator
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
	idGenerator IDGenerator,
	metrics MetricsRecorder,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		txManager:    txManager,
		locker:       locker,
		idGenerator:  idGenerator,
		metrics:      metrics,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и запись выполняются под блокировкой помещения в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: facility=%s, requester=%s, start=%s, end=%s, attendees=%d",
		req.FacilityID, req.RequesterID, req.StartTime, req.EndTime, req.Attendees)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.BookingRejected("create", "invalid_input")
		return nil, err
	}

	// 2. Помещение должно существовать и быть активным
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%s not found", req.FacilityID)
			uc.metrics.BookingRejected("create", "not_found")
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get facility id=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	if !facility.IsBookable() {
		uc.logger.Warn("CreateBooking: facility id=%s is not active", facility.ID)
		uc.metrics.BookingRejected("create", "not_found")
		return nil, fmt.Errorf("%w: facility %s is not active", ErrFacilityNotFound, facility.ID)
	}

	// 3. Вместимость проверяется до поиска пересечений
	if !facility.FitsAttendees(req.Attendees) {
		uc.logger.Warn("CreateBooking: %d attendees exceed capacity %d of facility id=%s",
			req.Attendees, facility.Capacity, facility.ID)
		uc.metrics.BookingRejected("create", "capacity_exceeded")
		return nil, fmt.Errorf("%w: %d > %d", ErrCapacityExceeded, req.Attendees, facility.Capacity)
	}

	// 4. Интервал
	requested := domain.NewInterval(req.StartTime, req.EndTime).UTC()
	if !requested.IsValid() {
		uc.logger.Warn("CreateBooking: invalid interval %s - %s", req.StartTime, req.EndTime)
		uc.metrics.BookingRejected("create", "invalid_interval")
		return nil, ErrInvalidInterval
	}

	unlock := uc.locker.Lock(facility.ID)
	defer unlock()

	var result *domain.Booking

	// 5. Проверка пересечений и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		window := scheduling.SearchWindow(requested, uc.settings.Grid)
		snapshot, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			FacilityID: &facility.ID,
			Window:     &window,
			ActiveOnly: true,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		conflicts := scheduling.FindConflicts(snapshot, facility.ID, requested, "")
		if len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: %d conflicts for facility id=%s, first with booking id=%s",
				len(conflicts), facility.ID, conflicts[0].Booking.ID)
			return &domain.ConflictError{
				Err:         ErrSchedulingConflict,
				Conflicts:   conflicts,
				Suggestions: scheduling.SuggestAlternatives(snapshot, facility.ID, requested, "", uc.settings.Grid, uc.settings.MaxSuggestions),
			}
		}

		now := uc.timeProvider.Now().UTC()
		booking := &domain.Booking{
			ID:           uc.idGenerator.NewID(),
			FacilityID:   facility.ID,
			FacilityName: facility.Name,
			Requester: domain.Requester{
				ID:         req.RequesterID,
				Name:       req.RequesterName,
				Department: req.RequesterDepartment,
			},
			Purpose:             req.Purpose,
			EventTitle:          req.EventTitle,
			StartTime:           requested.Start,
			EndTime:             requested.End,
			Status:              uc.initialStatus(),
			Attendees:           req.Attendees,
			SpecialRequirements: req.SpecialRequirements,
			EquipmentRequested:  req.EquipmentRequested,
			Cost:                scheduling.CalculateCost(facility.HourlyRate, requested),
			CreatedAt:           now,
			UpdatedAt:           now,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSchedulingConflict) {
			uc.metrics.BookingRejected("create", "conflict")
		}
		return nil, err
	}

	uc.metrics.BookingCreated(result.FacilityID, string(result.Status))
	uc.logger.Info("CreateBooking: successfully created booking id=%s, status=%s, cost=%.2f",
		result.ID, result.Status, result.Cost)

	return fromDomain(result), nil
}

func (uc *UseCase) initialStatus() domain.BookingStatus {
	if uc.settings.RequireApproval {
		return domain.StatusPending
	}
	return domain.StatusConfirmed
}
