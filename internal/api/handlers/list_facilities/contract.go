package list_facilities

import (
	"context"

	"github.com/m04kA/campus-facility-booking/internal/service/facilities/models"
)

type FacilityService interface {
	List(ctx context.Context, activeOnly bool) (*models.FacilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
