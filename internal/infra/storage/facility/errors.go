package facility

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда помещение не найдено в каталоге
	ErrFacilityNotFound = errors.New("facility.repository: facility not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("facility.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("facility.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("facility.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации списков в JSON-колонки
	ErrEncode = errors.New("facility.repository: failed to encode column")
)
