package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/notifier"
)

// UseCase use case для создания резервации
type UseCase struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	notifier        Notifier
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		notifier:        notifier,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания резервации.
// Проверка конфликта, валидация ссылок каталога и вставка строк выполняются
// в одной сериализуемой транзакции: из двух конкурентных запросов на одну
// тройку (зал, смена, дата) закоммитится максимум один, второй получит
// ErrSlotTaken, не оставив ни одной строки.
//
// Уведомление клиента отправляется после коммита и на результат бронирования
// не влияет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, venue=%d, slot=%d, date=%s",
		req.UserID, req.VenueID, req.SlotID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Инвариант цены: итоговая сумма не меньше стоимости зала.
	// Проверяется до открытия транзакции — при нарушении хранилище не трогаем.
	if req.TotalPrice < req.VenuePrice {
		uc.logger.Warn("CreateReservation: invalid pricing, total=%.2f < venue=%.2f",
			req.TotalPrice, req.VenuePrice)
		return nil, ErrInvalidPricing
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 3. Операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем ссылки каталога: зал и смена должны быть активны
		venue, err := uc.catalogRepo.GetVenue(txCtx, req.VenueID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrVenueNotFound) {
				uc.logger.Warn("CreateReservation: venue id=%d not found", req.VenueID)
				return ErrVenueNotFound
			}
			uc.logger.Error("CreateReservation: failed to get venue id=%d: %v", req.VenueID, err)
			return fmt.Errorf("%w: failed to get venue: %w", ErrInternal, err)
		}

		slot, err := uc.catalogRepo.GetTimeSlot(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrTimeSlotNotFound) {
				uc.logger.Warn("CreateReservation: time slot id=%d not found", req.SlotID)
				return ErrTimeSlotNotFound
			}
			uc.logger.Error("CreateReservation: failed to get time slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get time slot: %w", ErrInternal, err)
		}

		// 3.2. Проверяем услуги из списка
		for _, line := range req.Services {
			if _, err := uc.catalogRepo.GetService(txCtx, line.ServiceID); err != nil {
				if errors.Is(err, catalogRepo.ErrServiceNotFound) {
					uc.logger.Warn("CreateReservation: service id=%d not found", line.ServiceID)
					return ErrServiceNotFound
				}
				uc.logger.Error("CreateReservation: failed to get service id=%d: %v", line.ServiceID, err)
				return fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
			}
		}

		// 3.3. Проверяем доступность тройки (зал, смена, дата) с блокировкой
		taken, err := uc.reservationRepo.ConflictExists(txCtx, req.VenueID, req.SlotID, req.Date, nil)
		if err != nil {
			uc.logger.Error("CreateReservation: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %w", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateReservation: slot taken, venue=%d, slot=%d, date=%s",
				req.VenueID, req.SlotID, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 3.4. Создаем резервацию с денормализацией данных каталога
		reservation := &domain.Reservation{
			UserID:     req.UserID,
			VenueID:    req.VenueID,
			SlotID:     req.SlotID,
			Date:       req.Date,
			Theme:      req.Theme,
			PhotoRef:   req.PhotoRef,
			VenuePrice: req.VenuePrice,
			TotalPrice: req.TotalPrice,
			VenueTitle: venue.Title,
			SlotFrom:   slot.From,
			SlotTo:     slot.To,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		// 3.5. Строки услуг — атомарно с родительской резервацией
		if len(req.Services) > 0 {
			lines := make([]domain.ReservationServiceLine, 0, len(req.Services))
			for _, input := range req.Services {
				lines = append(lines, domain.ReservationServiceLine{
					ServiceID: input.ServiceID,
					Price:     input.Price,
				})
			}

			if err := uc.reservationRepo.CreateLines(txCtx, created.ID, lines); err != nil {
				uc.logger.Error("CreateReservation: failed to create service lines: %v", err)
				return fmt.Errorf("%w: failed to create service lines: %w", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 4. После коммита: перечитываем полную резервацию и уведомляем клиента
	full, lines, notified := uc.finalize(ctx, result)

	return buildResponse(full, lines, notified), nil
}

// finalize перечитывает созданную резервацию со строками услуг и публикует
// уведомление. Резервация к этому моменту уже закоммичена, поэтому любая
// ошибка здесь понижается до предупреждения.
func (uc *UseCase) finalize(ctx context.Context, created *domain.Reservation) (*domain.Reservation, []*domain.ReservationServiceLine, bool) {
	full, err := uc.reservationRepo.GetByID(ctx, created.ID)
	if err != nil {
		uc.logger.Warn("CreateReservation: post-commit read back failed for id=%d: %v", created.ID, err)
		return created, nil, false
	}

	lines, err := uc.reservationRepo.GetLines(ctx, created.ID)
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to read service lines for id=%d: %v", created.ID, err)
		return full, nil, false
	}

	summary := buildSummary(full, lines)
	if err := uc.notifier.Publish(ctx, summary); err != nil {
		uc.logger.Warn("CreateReservation: notification failed for id=%d: %v", created.ID, err)
		return full, lines, false
	}

	return full, lines, true
}

// buildSummary собирает плоскую сводку резервации для уведомления
func buildSummary(reservation *domain.Reservation, lines []*domain.ReservationServiceLine) *notifier.ReservationSummary {
	theme := "-"
	if reservation.Theme != nil && *reservation.Theme != "" {
		theme = *reservation.Theme
	}

	summaryLines := make([]notifier.SummaryLine, 0, len(lines))
	for _, line := range lines {
		summaryLines = append(summaryLines, notifier.SummaryLine{
			ServiceID:   line.ServiceID,
			Description: line.ServiceName,
			Price:       line.Price,
		})
	}

	return &notifier.ReservationSummary{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		Date:          reservation.Date.Format(domain.DateFormat),
		VenueTitle:    reservation.VenueTitle,
		SlotWindow:    reservation.SlotWindow(),
		Theme:         theme,
		TotalPrice:    reservation.TotalPrice,
		Services:      summaryLines,
		CreatedAt:     reservation.CreatedAt.Format(time.RFC3339),
	}
}

// buildResponse конвертирует доменную резервацию в response
func buildResponse(reservation *domain.Reservation, lines []*domain.ReservationServiceLine, notified bool) *Response {
	lineResponses := make([]LineResponse, 0, len(lines))
	for _, line := range lines {
		lineResponses = append(lineResponses, LineResponse{
			ID:          line.ID,
			ServiceID:   line.ServiceID,
			Description: line.ServiceName,
			Price:       line.Price,
		})
	}

	return &Response{
		ID:         reservation.ID,
		UserID:     reservation.UserID,
		VenueID:    reservation.VenueID,
		SlotID:     reservation.SlotID,
		Date:       reservation.Date,
		VenuePrice: reservation.VenuePrice,
		TotalPrice: reservation.TotalPrice,
		Theme:      reservation.Theme,
		PhotoRef:   reservation.PhotoRef,
		VenueTitle: reservation.VenueTitle,
		SlotFrom:   reservation.SlotFrom,
		SlotTo:     reservation.SlotTo,
		Lines:      lineResponses,
		Notified:   notified,
		CreatedAt:  reservation.CreatedAt,
		UpdatedAt:  reservation.UpdatedAt,
	}
}
