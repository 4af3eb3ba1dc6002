package create_booking

import (
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	"github.com/m04kA/campus-facility-booking/internal/scheduling"
)

// Settings параметры политики бронирования
type Settings struct {
	Grid            scheduling.GridConfig // Рабочее окно для подбора альтернатив
	MaxSuggestions  int                   // Сколько альтернатив предлагать при конфликте
	RequireApproval bool                  // true - новые бронирования создаются в статусе pending
}

// Request модель запроса на создание бронирования
type Request struct {
	FacilityID          string    // ID помещения
	RequesterID         string    // ID заявителя
	RequesterName       string    // Отображаемое имя заявителя
	RequesterDepartment string    // Подразделение (опционально)
	Purpose             string    // Цель бронирования
	EventTitle          string    // Название мероприятия
	StartTime           time.Time // Начало (включительно)
	EndTime             time.Time // Окончание (не включительно)
	Attendees           int       // Количество участников
	SpecialRequirements *string   // Особые требования (опционально)
	EquipmentRequested  []string  // Запрошенное оборудование (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string           // ID созданного бронирования
	FacilityID   string           // ID помещения
	FacilityName string           // Название помещения на момент бронирования
	Requester    domain.Requester // Заявитель
	Purpose      string
	EventTitle   string
	StartTime    time.Time
	EndTime      time.Time
	Status       string // confirmed или pending
	Attendees    int

	SpecialRequirements *string
	EquipmentRequested  []string

	Cost float64 // hourlyRate × часы

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
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
