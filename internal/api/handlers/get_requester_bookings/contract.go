package get_requester_bookings

import (
	"context"

	"github.com/m04kA/campus-facility-booking/internal/service/bookings/models"
)

type BookingService interface {
	ListByRequester(ctx context.Context, requesterID string, status *string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
