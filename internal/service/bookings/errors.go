package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrFacilityNotFound возвращается, когда помещение не найдено или неактивно
	ErrFacilityNotFound = errors.New("bookings: facility not found")

	// ErrInvalidTransition возвращается, когда переход статуса запрещен
	ErrInvalidTransition = errors.New("bookings: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInvalidInterval возвращается, когда начало не раньше окончания
	ErrInvalidInterval = errors.New("bookings: start time must be before end time")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
