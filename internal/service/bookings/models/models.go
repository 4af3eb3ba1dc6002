package models

import (
	"errors"
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение бронирований с фильтрацией
// Все поля опциональны
type ListBookingsRequest struct {
	FacilityID  *string `json:"facilityId,omitempty"`
	RequesterID *string `json:"requesterId,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		FacilityID:  r.FacilityID,
		RequesterID: r.RequesterID,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CheckConflictsRequest запрос на проверку пересечений без создания бронирования
type CheckConflictsRequest struct {
	FacilityID       string    `json:"facilityId"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	ExcludeBookingID string    `json:"excludeBookingId,omitempty"`
}

// StatsRequest запрос статистики за период (даты включительно)
// Без указания периода берутся последние domain.DefaultStatsPeriodDays дней
type StatsRequest struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Response модели

// RequesterResponse данные заявителя
type RequesterResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string            `json:"id"`
	FacilityID   string            `json:"facilityId"`
	FacilityName string            `json:"facilityName"`
	Requester    RequesterResponse `json:"requester"`
	Purpose      string            `json:"purpose"`
	EventTitle   string            `json:"eventTitle"`
	StartTime    time.Time         `json:"startTime"`
	EndTime      time.Time         `json:"endTime"`
	Status       string            `json:"status"`
	Attendees    int               `json:"attendees"`

	SpecialRequirements *string  `json:"specialRequirements,omitempty"`
	EquipmentRequested  []string `json:"equipmentRequested,omitempty"`

	Cost        float64 `json:"cost"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// IntervalResponse полуоткрытый интервал [start, end)
type IntervalResponse struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// ConflictResponse пересечение с существующим бронированием
type ConflictResponse struct {
	Booking BookingResponse  `json:"booking"`
	Overlap IntervalResponse `json:"overlap"`
}

// ConflictCheckResponse результат проверки пересечений
type ConflictCheckResponse struct {
	HasConflicts bool               `json:"hasConflicts"`
	Conflicts    []ConflictResponse `json:"conflicts"`
	Suggestions  []IntervalResponse `json:"suggestions"`
}

// FacilityUtilizationResponse загрузка помещения за период
type FacilityUtilizationResponse struct {
	FacilityID   string  `json:"facilityId"`
	FacilityName string  `json:"facilityName"`
	Bookings     int     `json:"bookings"`
	BookedHours  float64 `json:"bookedHours"`
	Utilization  float64 `json:"utilization"`
}

// StatsResponse статистика бронирований
type StatsResponse struct {
	From                string                        `json:"from"` // "2025-10-15"
	To                  string                        `json:"to"`   // включительно
	TotalBookings       int                           `json:"totalBookings"`
	PendingBookings     int                           `json:"pendingBookings"`
	ConfirmedBookings   int                           `json:"confirmedBookings"`
	CancelledBookings   int                           `json:"cancelledBookings"`
	CompletedBookings   int                           `json:"completedBookings"`
	TotalRevenue        float64                       `json:"totalRevenue"`
	FacilityUtilization []FacilityUtilizationResponse `json:"facilityUtilization"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		FacilityID:   b.FacilityID,
		FacilityName: b.FacilityName,
		Requester: RequesterResponse{
			ID:         b.Requester.ID,
			Name:       b.Requester.Name,
			Department: b.Requester.Department,
		},
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

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainInterval конвертирует интервал в DTO
func FromDomainInterval(i domain.Interval) IntervalResponse {
	return IntervalResponse{StartTime: i.Start, EndTime: i.End}
}

// FromDomainIntervals конвертирует список интервалов в DTO
func FromDomainIntervals(intervals []domain.Interval) []IntervalResponse {
	resp := make([]IntervalResponse, 0, len(intervals))
	for _, i := range intervals {
		resp = append(resp, FromDomainInterval(i))
	}
	return resp
}

// FromDomainConflicts конвертирует пересечения в DTO
func FromDomainConflicts(conflicts []domain.Conflict) []ConflictResponse {
	resp := make([]ConflictResponse, 0, len(conflicts))
	for _, c := range conflicts {
		item := ConflictResponse{Overlap: FromDomainInterval(c.Overlap)}
		if b := FromDomainBooking(c.Booking); b != nil {
			item.Booking = *b
		}
		resp = append(resp, item)
	}
	return resp
}

// FromDomainStats конвертирует статистику в DTO
func FromDomainStats(s domain.BookingStats) *StatsResponse {
	resp := &StatsResponse{
		From:                s.Period.Start.Format(domain.DateFormat),
		To:                  s.Period.End.AddDate(0, 0, -1).Format(domain.DateFormat),
		TotalBookings:       s.TotalBookings,
		PendingBookings:     s.PendingBookings,
		ConfirmedBookings:   s.ConfirmedBookings,
		CancelledBookings:   s.CancelledBookings,
		CompletedBookings:   s.CompletedBookings,
		TotalRevenue:        s.TotalRevenue,
		FacilityUtilization: make([]FacilityUtilizationResponse, 0, len(s.FacilityUtilization)),
	}

	for _, u := range s.FacilityUtilization {
		resp.FacilityUtilization = append(resp.FacilityUtilization, FacilityUtilizationResponse{
			FacilityID:   u.FacilityID,
			FacilityName: u.FacilityName,
			Bookings:     u.Bookings,
			BookedHours:  u.BookedHours,
			Utilization:  u.Utilization,
		})
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
