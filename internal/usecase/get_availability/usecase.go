package get_availability

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	facilityRepo "github.com/m04kA/campus-facility-booking/internal/infra/storage/facility"
	"github.com/m04kA/campus-facility-booking/internal/scheduling"
)

// UseCase use case для получения сетки доступности помещения на день
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	grid         scheduling.GridConfig
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	grid scheduling.GridConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		grid:         grid,
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: facility=%s, date=%s", req.FacilityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if strings.TrimSpace(req.FacilityID) == "" {
		return nil, fmt.Errorf("%w: facilityId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Помещение должно существовать и быть активным
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailability: facility id=%s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailability: failed to get facility id=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	if !facility.IsBookable() {
		uc.logger.Warn("GetAvailability: facility id=%s is not active", facility.ID)
		return nil, fmt.Errorf("%w: facility %s is not active", ErrFacilityNotFound, facility.ID)
	}

	// 3. Активные бронирования, пересекающие рабочее окно дня
	window := uc.grid.OperatingWindow(req.Date)
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		FacilityID: &facility.ID,
		Window:     &window,
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Строим сетку
	grid := scheduling.BuildAvailability(bookings, facility.ID, req.Date, uc.grid)

	slots := make([]Slot, 0, len(grid))
	free := 0
	for _, s := range grid {
		slots = append(slots, Slot{
			StartTime: s.Start,
			EndTime:   s.End,
			Available: s.Available,
			BookingID: s.BookingID,
		})
		if s.Available {
			free++
		}
	}

	uc.logger.Info("GetAvailability: facility=%s, date=%s, %d/%d slots free",
		facility.ID, req.Date.Format(domain.DateFormat), free, len(slots))

	return &Response{
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		Date:         window.Start,
		Slots:        slots,
	}, nil
}
