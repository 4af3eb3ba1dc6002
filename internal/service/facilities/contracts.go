package facilities

import (
	"context"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// FacilityRepository интерфейс каталога помещений
type FacilityRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Facility, error)
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
