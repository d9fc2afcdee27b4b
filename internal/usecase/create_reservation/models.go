package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание резервации
type Request struct {
	UserID     int64     // ID клиента
	VenueID    int64     // ID зала
	SlotID     int64     // ID смены
	Date       time.Time // Дата резервации (без времени)
	VenuePrice float64   // Стоимость зала на момент бронирования (снимок)
	TotalPrice float64   // Итоговая сумма, задается клиентским контуром
	Theme      *string   // Тематика праздника (опционально)
	PhotoRef   *string   // Ссылка на фото (опционально)
	Services   []ServiceLineInput
}

// ServiceLineInput услуга, добавляемая к резервации, с ценой-снимком
type ServiceLineInput struct {
	ServiceID int64
	Price     float64
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID      int64
	UserID  int64
	VenueID int64
	SlotID  int64
	Date    time.Time

	VenuePrice float64
	TotalPrice float64
	Theme      *string
	PhotoRef   *string

	// Денормализованные данные каталога
	VenueTitle string
	SlotFrom   types.TimeString
	SlotTo     types.TimeString

	Lines []LineResponse

	// Notified false, если резервация создана, но уведомление отправить
	// не удалось (для клиента это успех с предупреждением)
	Notified bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineResponse строка услуги созданной резервации
type LineResponse struct {
	ID          int64
	ServiceID   int64
	Description string
	Price       float64
}
