package get_availability

import (
	"context"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// FacilityRepository интерфейс каталога помещений
type FacilityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
