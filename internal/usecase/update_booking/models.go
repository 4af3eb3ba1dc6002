package update_booking

import (
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	"github.com/m04kA/campus-facility-booking/internal/scheduling"
)

// Settings параметры политики бронирования
type Settings struct {
	Grid           scheduling.GridConfig // Рабочее окно для подбора альтернатив
	MaxSuggestions int                   // Сколько альтернатив предлагать при конфликте
}

// Request модель запроса на изменение бронирования
// nil означает "не менять"
type Request struct {
	BookingID           string
	Purpose             *string
	EventTitle          *string
	StartTime           *time.Time
	EndTime             *time.Time
	Attendees           *int
	SpecialRequirements *string
	EquipmentRequested  *[]string
}

func (r *Request) hasChanges() bool {
	return r.Purpose != nil || r.EventTitle != nil || r.StartTime != nil || r.EndTime != nil ||
		r.Attendees != nil || r.SpecialRequirements != nil || r.EquipmentRequested != nil
}

func (r *Request) changesTime() bool {
	return r.StartTime != nil || r.EndTime != nil
}

// Response модель ответа с измененным бронированием
type Response struct {
	ID           string
	FacilityID   string
	FacilityName string
	Requester    domain.Requester
	Purpose      string
	EventTitle   string
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	Attendees    int

	SpecialRequirements *string
	EquipmentRequested  []string

	Cost float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:                  b.ID,
		FacilityID:          b.FacilityID,
		FacilityName:        b.FacilityName,
		Requester:           b.Requester,
		Purpose:             b.Purpose,
		EventTitle:          b.EventTitle,
		StartTime:           b.StartTime,
		EndTime:             b.EndTime,
		Status:              string(b.Status),
		Attendees:           b.Attendees,
		SpecialRequirements: b.SpecialRequirements,
		EquipmentRequested:  b.EquipmentRequested,
		Cost:                b.Cost,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}
