package notifier

// ReservationSummary плоская сводка резервации для консьюмера уведомлений.
// Содержит всё нужное для письма клиенту без обращений к базе сервиса.
type ReservationSummary struct {
	ReservationID int64         `json:"reservation_id"`
	UserID        int64         `json:"user_id"`
	Date          string        `json:"date"`        // YYYY-MM-DD
	VenueTitle    string        `json:"venue_title"`
	SlotWindow    string        `json:"slot_window"` // "10:00 - 14:00"
	Theme         string        `json:"theme"`
	TotalPrice    float64       `json:"total_price"`
	Services      []SummaryLine `json:"services"`
	CreatedAt     string        `json:"created_at"` // RFC3339
}

// SummaryLine строка услуги в сводке с ценой-снимком
type SummaryLine struct {
	ServiceID   int64   `json:"service_id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
