package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	bookingRepo "github.com/m04kA/campus-facility-booking/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/campus-facility-booking/internal/infra/storage/facility"
	"github.com/m04kA/campus-facility-booking/internal/scheduling"
	"github.com/m04kA/campus-facility-booking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение, отмена, смена статуса,
// проверка пересечений, статистика и автоматическое завершение
type Service struct {
	bookingRepo    BookingRepository
	facilityRepo   FacilityRepository
	txManager      TransactionManager
	locker         Locker
	metrics        MetricsRecorder
	grid           scheduling.GridConfig
	maxSuggestions int
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	txManager TransactionManager,
	locker Locker,
	metrics MetricsRecorder,
	grid scheduling.GridConfig,
	maxSuggestions int,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		facilityRepo:   facilityRepo,
		txManager:      txManager,
		locker:         locker,
		metrics:        metrics,
		grid:           grid,
		maxSuggestions: maxSuggestions,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по помещению, заявителю и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListBookings: facility=%v, requester=%v, status=%v", req.FacilityID, req.RequesterID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListByRequester получает историю бронирований заявителя
// Опционально фильтрует по статусу
func (s *Service) ListByRequester(ctx context.Context, requesterID string, status *string) (*models.BookingListResponse, error) {
	if strings.TrimSpace(requesterID) == "" {
		return nil, fmt.Errorf("%w: requester id is required", ErrInvalidInput)
	}

	return s.List(ctx, &models.ListBookingsRequest{RequesterID: &requesterID, Status: status})
}

// Cancel отменяет бронирование
// Повторная отмена ничего не меняет (updatedAt остается прежним), отмена завершенного запрещена
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("CancelBooking: cancelling booking id=%s", id)

	current, err := s.getBooking(ctx, "CancelBooking", id)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(current.FacilityID)
	defer unlock()

	var (
		result  *domain.Booking
		changed bool
	)

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "CancelBooking", id)
		if err != nil {
			return err
		}

		if booking.IsCancelled() {
			s.logger.Info("CancelBooking: booking id=%s is already cancelled", id)
			result = booking
			return nil
		}

		if !booking.Status.CanTransitionTo(domain.StatusCancelled) {
			s.logger.Warn("CancelBooking: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
			s.metrics.BookingRejected("cancel", "invalid_transition")
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, domain.StatusCancelled)
		}

		now := s.timeProvider.Now().UTC()
		if err := s.updateStatus(txCtx, "CancelBooking", id, domain.StatusCancelled, now); err != nil {
			return err
		}

		booking.Status = domain.StatusCancelled
		booking.CancelledAt = &now
		booking.UpdatedAt = now
		result = booking
		changed = true
		return nil
	})

	if err != nil {
		return nil, err
	}

	if changed {
		s.metrics.BookingCancelled(result.FacilityID)
		s.logger.Info("CancelBooking: successfully cancelled booking id=%s", id)
	}

	return models.FromDomainBooking(result), nil
}

// UpdateStatus переводит бронирование в новый статус по правилам жизненного цикла
// pending -> confirmed | cancelled; confirmed -> cancelled | completed
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", id, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	// Отмена имеет собственную семантику (cancelledAt, идемпотентность)
	if status == domain.StatusCancelled {
		return s.Cancel(ctx, id)
	}

	current, err := s.getBooking(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(current.FacilityID)
	defer unlock()

	var result *domain.Booking

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}

		if booking.Status == status {
			s.logger.Info("UpdateStatus: booking id=%s already has status=%s", id, status)
			result = booking
			return nil
		}

		if !booking.Status.CanTransitionTo(status) {
			s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%s", booking.Status, status, id)
			s.metrics.BookingRejected("set_status", "invalid_transition")
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
		}

		now := s.timeProvider.Now().UTC()
		if err := s.updateStatus(txCtx, "UpdateStatus", id, status, now); err != nil {
			return err
		}

		booking.Status = status
		booking.UpdatedAt = now
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%s has status=%s", id, result.Status)
	return models.FromDomainBooking(result), nil
}

// CheckConflicts проверяет пересечения интервала с активными бронированиями помещения
// Ничего не записывает; при наличии конфликтов подбирает свободные альтернативы
func (s *Service) CheckConflicts(ctx context.Context, req *models.CheckConflictsRequest) (*models.ConflictCheckResponse, error) {
	s.logger.Info("CheckConflicts: facility=%s, start=%s, end=%s, exclude=%s",
		req.FacilityID, req.StartTime, req.EndTime, req.ExcludeBookingID)

	if strings.TrimSpace(req.FacilityID) == "" {
		return nil, fmt.Errorf("%w: facility id is required", ErrInvalidInput)
	}

	requested := domain.NewInterval(req.StartTime, req.EndTime).UTC()
	if !requested.IsValid() {
		s.logger.Warn("CheckConflicts: invalid interval %s - %s", req.StartTime, req.EndTime)
		return nil, ErrInvalidInterval
	}

	if _, err := s.facilityRepo.GetByID(ctx, req.FacilityID); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("CheckConflicts: facility id=%s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("CheckConflicts: failed to get facility id=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	window := scheduling.SearchWindow(requested, s.grid)
	snapshot, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		FacilityID: &req.FacilityID,
		Window:     &window,
		ActiveOnly: true,
	})
	if err != nil {
		s.logger.Error("CheckConflicts: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	conflicts := scheduling.FindConflicts(snapshot, req.FacilityID, requested, req.ExcludeBookingID)
	suggestions := make([]domain.Interval, 0)
	if len(conflicts) > 0 {
		suggestions = scheduling.SuggestAlternatives(snapshot, req.FacilityID, requested, req.ExcludeBookingID, s.grid, s.maxSuggestions)
	}

	s.logger.Info("CheckConflicts: facility=%s, %d conflicts, %d suggestions", req.FacilityID, len(conflicts), len(suggestions))
	return &models.ConflictCheckResponse{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    models.FromDomainConflicts(conflicts),
		Suggestions:  models.FromDomainIntervals(suggestions),
	}, nil
}

// Stats считает статистику бронирований за период
func (s *Service) Stats(ctx context.Context, req *models.StatsRequest) (*models.StatsResponse, error) {
	now := s.timeProvider.Now()

	to := now
	if req.To != nil {
		to = *req.To
	}
	from := to.AddDate(0, 0, -(domain.DefaultStatsPeriodDays - 1))
	if req.From != nil {
		from = *req.From
	}

	period := scheduling.StatsPeriod(from, to, s.grid)
	if !period.IsValid() {
		s.logger.Warn("Stats: invalid period %s - %s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))
		return nil, ErrInvalidInterval
	}

	s.logger.Info("Stats: period=%s - %s", period.Start.Format(domain.DateFormat), period.End.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{Window: &period})
	if err != nil {
		s.logger.Error("Stats: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	facilities, err := s.facilityRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("Stats: failed to get facilities: %v", err)
		return nil, fmt.Errorf("%w: failed to get facilities: %v", ErrInternal, err)
	}

	stats := scheduling.ComputeStats(bookings, facilities, period, s.grid)
	return models.FromDomainStats(stats), nil
}

// CompleteFinished переводит завершившиеся подтвержденные бронирования в completed
// Возвращает количество завершенных бронирований
func (s *Service) CompleteFinished(ctx context.Context) (int, error) {
	now := s.timeProvider.Now().UTC()
	confirmed := domain.StatusConfirmed

	finished, err := s.bookingRepo.List(ctx, domain.BookingsFilter{Status: &confirmed, EndedBy: &now})
	if err != nil {
		s.logger.Error("CompleteFinished: failed to get bookings: %v", err)
		return 0, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	completed := 0
	for _, b := range finished {
		done, err := s.completeOne(ctx, b, now)
		if err != nil {
			s.metrics.BookingsCompleted(completed)
			return completed, err
		}
		if done {
			completed++
		}
	}

	s.metrics.BookingsCompleted(completed)
	if completed > 0 {
		s.logger.Info("CompleteFinished: completed %d bookings", completed)
	}

	return completed, nil
}

func (s *Service) completeOne(ctx context.Context, b *domain.Booking, now time.Time) (bool, error) {
	unlock := s.locker.Lock(b.FacilityID)
	defer unlock()

	done := false
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.getBooking(txCtx, "CompleteFinished", b.ID)
		if err != nil {
			return err
		}

		// Статус мог смениться между выборкой и блокировкой
		if current.Status != domain.StatusConfirmed {
			return nil
		}

		if err := s.updateStatus(txCtx, "CompleteFinished", b.ID, domain.StatusCompleted, now); err != nil {
			return err
		}
		done = true
		return nil
	})

	return done, err
}

// Вспомогательные методы

// getBooking получает бронирование и переводит ошибки репозитория в ошибки сервиса
func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return booking, nil
}

func (s *Service) updateStatus(ctx context.Context, op, id string, status domain.BookingStatus, at time.Time) error {
	if err := s.bookingRepo.UpdateStatus(ctx, id, status, at); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found during update", op, id)
			return ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}
