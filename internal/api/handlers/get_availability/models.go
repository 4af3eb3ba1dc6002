package get_availability

import (
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	getAvailability "github.com/m04kA/campus-facility-booking/internal/usecase/get_availability"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
	BookingID *string   `json:"bookingId,omitempty"`
}

// AvailabilityResponse HTTP модель сетки доступности
type AvailabilityResponse struct {
	FacilityID   string         `json:"facilityId"`
	FacilityName string         `json:"facilityName"`
	Date         string         `json:"date"` // "2025-10-15"
	Slots        []SlotResponse `json:"slots"`
}

// ToUseCaseRequest формирует запрос к use case (с парсингом даты)
func ToUseCaseRequest(facilityID, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		FacilityID: facilityID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Available: s.Available,
			BookingID: s.BookingID,
		})
	}

	return &AvailabilityResponse{
		FacilityID:   resp.FacilityID,
		FacilityName: resp.FacilityName,
		Date:         resp.Date.Format(domain.DateFormat),
		Slots:        slots,
	}
}
