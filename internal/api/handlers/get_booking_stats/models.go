package get_booking_stats

import (
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	"github.com/m04kA/campus-facility-booking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров (даты YYYY-MM-DD, опционально)
func ToServiceRequest(fromStr, toStr string) (*models.StatsRequest, error) {
	req := &models.StatsRequest{}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	return req, nil
}
