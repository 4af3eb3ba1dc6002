package bookings

import (
	"context"
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, at time.Time) error
}

// FacilityRepository интерфейс каталога помещений
type FacilityRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Facility, error)
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker блокировка по ключу (facility ID) внутри процесса
type Locker interface {
	Lock(key string) (unlock func())
}

// MetricsRecorder бизнес-метрики бронирований
type MetricsRecorder interface {
	BookingRejected(operation, reason string)
	BookingCancelled(facilityID string)
	BookingsCompleted(count int)
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
