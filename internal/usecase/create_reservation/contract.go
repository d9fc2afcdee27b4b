package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/notifier"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	CreateLines(ctx context.Context, reservationID int64, lines []domain.ReservationServiceLine) error
	ConflictExists(ctx context.Context, venueID, slotID int64, date time.Time, excludeID *int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetLines(ctx context.Context, reservationID int64) ([]*domain.ReservationServiceLine, error)
}

// CatalogRepository интерфейс каталога залов, смен и услуг (только чтение)
type CatalogRepository interface {
	GetVenue(ctx context.Context, id int64) (*domain.Venue, error)
	GetTimeSlot(ctx context.Context, id int64) (*domain.TimeSlot, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
}

// Notifier интерфейс отправки уведомления о созданной резервации
type Notifier interface {
	Publish(ctx context.Context, summary *notifier.ReservationSummary) error
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
