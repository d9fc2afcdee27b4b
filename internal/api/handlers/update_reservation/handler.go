package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	updateReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID резервации"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты резервации, ожидается YYYY-MM-DD"
	msgNotFound             = "резервация не найдена"
	msgSlotTaken            = "выбранный зал уже забронирован на эту дату и смену"
	msgInvalidPricing       = "итоговая сумма не может быть меньше стоимости зала"
	msgVenueNotFound        = "зал не найден"
	msgTimeSlotNotFound     = "смена не найдена"
	msgInvalidInput         = "некорректные данные резервации"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), reservationID, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrSlotTaken):
			h.logger.Warn("PUT /reservations/{id} - Slot taken: reservation_id=%d, venue_id=%d, slot_id=%d, date=%s",
				reservationID, req.VenueID, req.SlotID, req.Date)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, updateReservation.ErrInvalidPricing):
			h.logger.Warn("PUT /reservations/{id} - Invalid pricing: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidPricing)

		case errors.Is(err, updateReservation.ErrVenueNotFound):
			h.logger.Warn("PUT /reservations/{id} - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, updateReservation.ErrTimeSlotNotFound):
			h.logger.Warn("PUT /reservations/{id} - Time slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgTimeSlotNotFound)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
