package update_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ConflictExists(ctx context.Context, venueID, slotID int64, date time.Time, excludeID *int64) (bool, error)
	Update(ctx context.Context, id int64, reservation *domain.Reservation) error
}

// CatalogRepository интерфейс каталога залов и смен (только чтение)
type CatalogRepository interface {
	GetVenue(ctx context.Context, id int64) (*domain.Venue, error)
	GetTimeSlot(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
