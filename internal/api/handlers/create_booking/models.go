package create_booking

import (
	"time"

	"github.com/m04kA/campus-facility-booking/internal/service/bookings/models"
	createBooking "github.com/m04kA/campus-facility-booking/internal/usecase/create_booking"
)

// RequesterRequest данные заявителя
type RequesterRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID          string           `json:"facilityId"`
	Requester           RequesterRequest `json:"requester"`
	Purpose             string           `json:"purpose"`
	EventTitle          string           `json:"eventTitle"`
	StartTime           time.Time        `json:"startTime"` // RFC3339
	EndTime             time.Time        `json:"endTime"`   // RFC3339
	Attendees           int              `json:"attendees"`
	SpecialRequirements *string          `json:"specialRequirements,omitempty"`
	EquipmentRequested  []string         `json:"equipmentRequested,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		FacilityID:          r.FacilityID,
		RequesterID:         r.Requester.ID,
		RequesterName:       r.Requester.Name,
		RequesterDepartment: r.Requester.Department,
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
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
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
