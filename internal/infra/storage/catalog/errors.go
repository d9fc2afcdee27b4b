package catalog

import "errors"

var (
	// ErrVenueNotFound возвращается, когда активный зал не найден
	ErrVenueNotFound = errors.New("catalog.repository: venue not found")

	// ErrTimeSlotNotFound возвращается, когда активная смена не найдена
	ErrTimeSlotNotFound = errors.New("catalog.repository: time slot not found")

	// ErrServiceNotFound возвращается, когда активная услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
