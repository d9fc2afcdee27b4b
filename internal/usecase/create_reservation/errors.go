package create_reservation

import "errors"

var (
	// ErrSlotTaken возвращается, когда тройка (зал, смена, дата) уже занята
	// активной резервацией
	ErrSlotTaken = errors.New("create_reservation: slot already reserved for this date")

	// ErrInvalidPricing возвращается, когда итоговая сумма меньше стоимости зала
	ErrInvalidPricing = errors.New("create_reservation: total price is below venue price")

	// ErrVenueNotFound возвращается, когда зал не найден или неактивен
	ErrVenueNotFound = errors.New("create_reservation: venue not found")

	// ErrTimeSlotNotFound возвращается, когда смена не найдена или неактивна
	ErrTimeSlotNotFound = errors.New("create_reservation: time slot not found")

	// ErrServiceNotFound возвращается, когда услуга из списка не найдена или неактивна
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
