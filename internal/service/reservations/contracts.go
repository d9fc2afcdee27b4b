package reservations

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetLines(ctx context.Context, reservationID int64) ([]*domain.ReservationServiceLine, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error)
	GetAll(ctx context.Context) ([]*domain.Reservation, error)
	SoftDelete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
