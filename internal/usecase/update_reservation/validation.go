package update_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует идентификатор и входные данные запроса
func validateRequest(id int64, req *Request) error {
	if id <= 0 {
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.VenuePrice < 0 {
		return fmt.Errorf("%w: venuePrice must be non-negative", ErrInvalidInput)
	}

	if req.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice must be non-negative", ErrInvalidInput)
	}

	if req.Theme != nil && len(*req.Theme) > domain.MaxThemeLength {
		return fmt.Errorf("%w: theme exceeds %d characters", ErrInvalidInput, domain.MaxThemeLength)
	}

	if req.PhotoRef != nil && len(*req.PhotoRef) > domain.MaxPhotoRefLength {
		return fmt.Errorf("%w: photoRef exceeds %d characters", ErrInvalidInput, domain.MaxPhotoRefLength)
	}

	return nil
}
