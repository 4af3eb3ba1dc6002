package update_booking

import (
	"time"

	"github.com/m04kA/campus-facility-booking/internal/service/bookings/models"
	updateBooking "github.com/m04kA/campus-facility-booking/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
// Все поля опциональны, отсутствующее поле не меняется
type UpdateBookingRequest struct {
	Purpose             *string    `json:"purpose,omitempty"`
	EventTitle          *string    `json:"eventTitle,omitempty"`
	StartTime           *time.Time `json:"startTime,omitempty"`
	EndTime             *time.Time `json:"endTime,omitempty"`
	Attendees           *int       `json:"attendees,omitempty"`
	SpecialRequirements *string    `json:"specialRequirements,omitempty"` // "" очищает поле
	EquipmentRequested  *[]string  `json:"equipmentRequested,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID string) *updateBooking.Request {
	return &updateBooking.Request{
		BookingID:           bookingID,
		Purpose:             r.Purpose,
		EventTitle:          r.EventTitle,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		Attendees:           r.Attendees,
		SpecialRequirements: r.SpecialRequirements,
		EquipmentRequested:  r.EquipmentRequested,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *models.BookingResponse {
	return &models.BookingResponse{
		ID:           resp.ID,
		FacilityID:   resp.FacilityID,
		FacilityName: resp.FacilityName,
		Requester: models.RequesterResponse{
			ID:         resp.Requester.ID,
			Name:       resp.Requester.Name,
			Department: resp.Requester.Department,
		},
		Purpose:             resp.Purpose,
		EventTitle:          resp.EventTitle,
		StartTime:           resp.StartTime,
		EndTime:             resp.EndTime,
		Status:              resp.Status,
		Attendees:           resp.Attendees,
		SpecialRequirements: resp.SpecialRequirements,
		EquipmentRequested:  resp.EquipmentRequested,
		Cost:                resp.Cost,
		CreatedAt:           resp.CreatedAt,
		UpdatedAt:           resp.UpdatedAt,
	}
}
