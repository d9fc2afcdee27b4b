package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	VenueID    int64              `json:"venueId"`
	SlotID     int64              `json:"slotId"`
	Date       string             `json:"date"` // "2025-12-15"
	VenuePrice float64            `json:"venuePrice"`
	TotalPrice float64            `json:"totalPrice"`
	Theme      *string            `json:"theme,omitempty"`
	PhotoRef   *string            `json:"photoRef,omitempty"`
	Services   []ServiceLineInput `json:"services,omitempty"`
}

// ServiceLineInput услуга с ценой-снимком на момент бронирования
type ServiceLineInput struct {
	ServiceID int64   `json:"serviceId"`
	Price     float64 `json:"price"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64          `json:"id"`
	UserID     int64          `json:"userId"`
	VenueID    int64          `json:"venueId"`
	SlotID     int64          `json:"slotId"`
	Date       string         `json:"date"`
	VenuePrice float64        `json:"venuePrice"`
	TotalPrice float64        `json:"totalPrice"`
	Theme      *string        `json:"theme,omitempty"`
	PhotoRef   *string        `json:"photoRef,omitempty"`
	VenueTitle string         `json:"venueTitle"`
	SlotFrom   string         `json:"slotFrom"`
	SlotTo     string         `json:"slotTo"`
	Services   []LineResponse `json:"services"`
	Notified   bool           `json:"notified"`
	CreatedAt  string         `json:"createdAt"`
	UpdatedAt  string         `json:"updatedAt"`
}

// LineResponse строка услуги в составе резервации
type LineResponse struct {
	ID          int64   `json:"id"`
	ServiceID   int64   `json:"serviceId"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	services := make([]createReservation.ServiceLineInput, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, createReservation.ServiceLineInput{
			ServiceID: s.ServiceID,
			Price:     s.Price,
		})
	}

	return &createReservation.Request{
		UserID:     userID,
		VenueID:    r.VenueID,
		SlotID:     r.SlotID,
		Date:       date,
		VenuePrice: r.VenuePrice,
		TotalPrice: r.TotalPrice,
		Theme:      r.Theme,
		PhotoRef:   r.PhotoRef,
		Services:   services,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	lines := make([]LineResponse, 0, len(resp.Lines))
	for _, l := range resp.Lines {
		lines = append(lines, LineResponse{
			ID:          l.ID,
			ServiceID:   l.ServiceID,
			Description: l.Description,
			Price:       l.Price,
		})
	}

	return &ReservationResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		VenueID:    resp.VenueID,
		SlotID:     resp.SlotID,
		Date:       resp.Date.Format(domain.DateFormat),
		VenuePrice: resp.VenuePrice,
		TotalPrice: resp.TotalPrice,
		Theme:      resp.Theme,
		PhotoRef:   resp.PhotoRef,
		VenueTitle: resp.VenueTitle,
		SlotFrom:   resp.SlotFrom.String(),
		SlotTo:     resp.SlotTo.String(),
		Services:   lines,
		Notified:   resp.Notified,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
