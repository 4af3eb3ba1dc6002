package create_booking

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда помещение не найдено или неактивно
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrCapacityExceeded возвращается, когда участников больше вместимости помещения
	ErrCapacityExceeded = errors.New("create_booking: attendees exceed facility capacity")

	// ErrInvalidInterval возвращается, когда начало не раньше окончания
	ErrInvalidInterval = errors.New("create_booking: start time must be before end time")

	// ErrSchedulingConflict возвращается, когда интервал пересекается с активным бронированием
	// Приходит обернутым в *domain.ConflictError с пересечениями и альтернативами
	ErrSchedulingConflict = errors.New("create_booking: scheduling conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
