package check_conflicts

import (
	"context"

	"github.com/m04kA/campus-facility-booking/internal/service/bookings/models"
)

type BookingService interface {
	CheckConflicts(ctx context.Context, req *models.CheckConflictsRequest) (*models.ConflictCheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
