package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrFacilityNotFound возвращается, когда помещение бронирования пропало из каталога
	ErrFacilityNotFound = errors.New("update_booking: facility not found")

	// ErrNotModifiable возвращается при изменении отмененного или завершенного бронирования
	ErrNotModifiable = errors.New("update_booking: booking cannot be modified")

	// ErrCapacityExceeded возвращается, когда участников больше вместимости помещения
	ErrCapacityExceeded = errors.New("update_booking: attendees exceed facility capacity")

	// ErrInvalidInterval возвращается, когда начало не раньше окончания
	ErrInvalidInterval = errors.New("update_booking: start time must be before end time")

	// ErrSchedulingConflict возвращается, когда новый интервал пересекается с другим активным бронированием
	// Приходит обернутым в *domain.ConflictError с пересечениями и альтернативами
	ErrSchedulingConflict = errors.New("update_booking: scheduling conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
