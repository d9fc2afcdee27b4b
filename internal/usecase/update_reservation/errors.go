package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда активная резервация не найдена
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrSlotTaken возвращается, когда новая тройка (зал, смена, дата)
	// занята другой активной резервацией
	ErrSlotTaken = errors.New("update_reservation: slot already reserved for this date")

	// ErrInvalidPricing возвращается, когда итоговая сумма меньше стоимости зала
	ErrInvalidPricing = errors.New("update_reservation: total price is below venue price")

	// ErrVenueNotFound возвращается, когда зал не найден или неактивен
	ErrVenueNotFound = errors.New("update_reservation: venue not found")

	// ErrTimeSlotNotFound возвращается, когда смена не найдена или неактивна
	ErrTimeSlotNotFound = errors.New("update_reservation: time slot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
