package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
)

// UseCase use case для обновления резервации
type UseCase struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case обновления резервации.
// Проверка конфликта выполняется заново для новой тройки (зал, смена, дата),
// исключая собственную строку: обновление не может незаметно занять слот,
// принадлежащий другой активной резервации.
func (uc *UseCase) Execute(ctx context.Context, id int64, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, venue=%d, slot=%d, date=%s",
		id, req.VenueID, req.SlotID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(id, req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Инвариант цены проверяется заново против новых значений
	if req.TotalPrice < req.VenuePrice {
		uc.logger.Warn("UpdateReservation: invalid pricing, total=%.2f < venue=%.2f",
			req.TotalPrice, req.VenuePrice)
		return nil, ErrInvalidPricing
	}

	// 3. Операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Резервация должна существовать и быть активной
		if _, err := uc.reservationRepo.GetByID(txCtx, id); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", id)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
		}

		// 3.2. Новые ссылки каталога должны быть активны
		if _, err := uc.catalogRepo.GetVenue(txCtx, req.VenueID); err != nil {
			if errors.Is(err, catalogRepo.ErrVenueNotFound) {
				uc.logger.Warn("UpdateReservation: venue id=%d not found", req.VenueID)
				return ErrVenueNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get venue id=%d: %v", req.VenueID, err)
			return fmt.Errorf("%w: failed to get venue: %w", ErrInternal, err)
		}

		if _, err := uc.catalogRepo.GetTimeSlot(txCtx, req.SlotID); err != nil {
			if errors.Is(err, catalogRepo.ErrTimeSlotNotFound) {
				uc.logger.Warn("UpdateReservation: time slot id=%d not found", req.SlotID)
				return ErrTimeSlotNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get time slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get time slot: %w", ErrInternal, err)
		}

		// 3.3. Конфликт по новой тройке, собственная строка исключается
		taken, err := uc.reservationRepo.ConflictExists(txCtx, req.VenueID, req.SlotID, req.Date, &id)
		if err != nil {
			uc.logger.Error("UpdateReservation: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %w", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("UpdateReservation: slot taken, venue=%d, slot=%d, date=%s",
				req.VenueID, req.SlotID, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 3.4. Перезаписываем изменяемые поля
		err = uc.reservationRepo.Update(txCtx, id, &domain.Reservation{
			VenueID:    req.VenueID,
			SlotID:     req.SlotID,
			Date:       req.Date,
			Theme:      req.Theme,
			PhotoRef:   req.PhotoRef,
			VenuePrice: req.VenuePrice,
			TotalPrice: req.TotalPrice,
		})
		if err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrReservationNotFound):
				return ErrReservationNotFound
			case errors.Is(err, reservationRepo.ErrSlotTaken):
				return ErrSlotTaken
			default:
				uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", id, err)
				return fmt.Errorf("%w: failed to update reservation: %w", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. Возвращаем запись после обновления
	updated, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("UpdateReservation: post-update read back failed for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: post-update read back failed: %w", ErrInternal, err)
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", id)

	return &Response{
		ID:         updated.ID,
		UserID:     updated.UserID,
		VenueID:    updated.VenueID,
		SlotID:     updated.SlotID,
		Date:       updated.Date,
		VenuePrice: updated.VenuePrice,
		TotalPrice: updated.TotalPrice,
		Theme:      updated.Theme,
		PhotoRef:   updated.PhotoRef,
		VenueTitle: updated.VenueTitle,
		SlotFrom:   updated.SlotFrom,
		SlotTo:     updated.SlotTo,
		CreatedAt:  updated.CreatedAt,
		UpdatedAt:  updated.UpdatedAt,
	}, nil
}
