package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// FacilityRepository интерфейс каталога помещений
type FacilityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker блокировка по ключу (facility ID) внутри процесса
type Locker interface {
	Lock(key string) (unlock func())
}

// IDGenerator генератор идентификаторов бронирований
type IDGenerator interface {
	NewID() string
}

// MetricsRecorder бизнес-метрики бронирований
type MetricsRecorder interface {
	BookingCreated(facilityID, status string)
	BookingRejected(operation, reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
