package list_bookings

import (
	"net/url"

	"github.com/m04kA/campus-facility-booking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Пустые параметры не участвуют в фильтрации
func ToServiceRequest(query url.Values) *models.ListBookingsRequest {
	return &models.ListBookingsRequest{
		FacilityID:  optional(query.Get("facilityId")),
		RequesterID: optional(query.Get("requesterId")),
		Status:      optional(query.Get("status")),
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
