package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	updateReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model (полная замена изменяемых полей)
type UpdateReservationRequest struct {
	VenueID    int64   `json:"venueId"`
	SlotID     int64   `json:"slotId"`
	Date       string  `json:"date"` // "2025-12-15"
	VenuePrice float64 `json:"venuePrice"`
	TotalPrice float64 `json:"totalPrice"`
	Theme      *string `json:"theme,omitempty"`
	PhotoRef   *string `json:"photoRef,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	VenueID    int64   `json:"venueId"`
	SlotID     int64   `json:"slotId"`
	Date       string  `json:"date"`
	VenuePrice float64 `json:"venuePrice"`
	TotalPrice float64 `json:"totalPrice"`
	Theme      *string `json:"theme,omitempty"`
	PhotoRef   *string `json:"photoRef,omitempty"`
	VenueTitle string  `json:"venueTitle"`
	SlotFrom   string  `json:"slotFrom"`
	SlotTo     string  `json:"slotTo"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest() (*updateReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &updateReservation.Request{
		VenueID:    r.VenueID,
		SlotID:     r.SlotID,
		Date:       date,
		VenuePrice: r.VenuePrice,
		TotalPrice: r.TotalPrice,
		Theme:      r.Theme,
		PhotoRef:   r.PhotoRef,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
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
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
