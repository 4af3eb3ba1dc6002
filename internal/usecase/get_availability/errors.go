package get_availability

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда помещение не найдено или неактивно
	ErrFacilityNotFound = errors.New("get_availability: facility not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
