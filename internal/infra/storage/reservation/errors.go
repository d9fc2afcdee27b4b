package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда активная резервация не найдена
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken возвращается, когда активная резервация на ту же тройку
	// (зал, смена, дата) уже существует. Сюда же транслируется нарушение
	// частичного уникального индекса uq_reservations_active_slot.
	ErrSlotTaken = errors.New("reservation.repository: slot already reserved")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
