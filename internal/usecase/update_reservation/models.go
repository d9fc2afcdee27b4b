package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request полная замена изменяемых полей резервации.
// Строки услуг этим use case не меняются.
type Request struct {
	VenueID    int64
	SlotID     int64
	Date       time.Time
	VenuePrice float64
	TotalPrice float64
	Theme      *string
	PhotoRef   *string
}

// Response модель ответа с обновленной резервацией
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

	CreatedAt time.Time
	UpdatedAt time.Time
}
