package get_availability

import "time"

// Request модель запроса сетки доступности
type Request struct {
	FacilityID string    // ID помещения
	Date       time.Time // Календарная дата (время игнорируется)
}

// Response модель ответа с сеткой доступности на день
type Response struct {
	FacilityID   string
	FacilityName string
	Date         time.Time
	Slots        []Slot // Всегда полная сетка рабочего окна
}

// Slot модель временного слота
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
	Available bool
	BookingID *string // Первое бронирование, занимающее слот
}
