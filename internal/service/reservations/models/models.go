package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Response модели

// ReservationResponse ответ с данными резервации
type ReservationResponse struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"userId"`
	VenueID int64  `json:"venueId"`
	SlotID  int64  `json:"slotId"`
	Date    string `json:"date"` // "2025-12-15"

	VenuePrice float64 `json:"venuePrice"`
	TotalPrice float64 `json:"totalPrice"`
	Theme      *string `json:"theme,omitempty"`
	PhotoRef   *string `json:"photoRef,omitempty"`

	// Денормализованные данные каталога
	VenueTitle string `json:"venueTitle"`
	SlotFrom   string `json:"slotFrom"` // "10:00"
	SlotTo     string `json:"slotTo"`   // "14:00"

	Lines []LineResponse `json:"services,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LineResponse строка услуги резервации с ценой-снимком
type LineResponse struct {
	ID          int64   `json:"id"`
	ServiceID   int64   `json:"serviceId"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ReservationListResponse ответ со списком резерваций
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation, lines []*domain.ReservationServiceLine) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		VenueID:    r.VenueID,
		SlotID:     r.SlotID,
		Date:       r.Date.Format(domain.DateFormat),
		VenuePrice: r.VenuePrice,
		TotalPrice: r.TotalPrice,
		Theme:      r.Theme,
		PhotoRef:   r.PhotoRef,
		VenueTitle: r.VenueTitle,
		SlotFrom:   r.SlotFrom.String(),
		SlotTo:     r.SlotTo.String(),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}

	for _, line := range lines {
		resp.Lines = append(resp.Lines, LineResponse{
			ID:          line.ID,
			ServiceID:   line.ServiceID,
			Description: line.ServiceName,
			Price:       line.Price,
		})
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO.
// Строки услуг в списках не раскрываются — это проекция для таблиц.
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		if r := FromDomainReservation(reservation, nil); r != nil {
			resp.Reservations = append(resp.Reservations, *r)
		}
	}

	return resp
}
