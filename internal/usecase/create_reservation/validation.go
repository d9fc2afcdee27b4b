package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
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

	if len(req.Services) > domain.MaxServiceLines {
		return fmt.Errorf("%w: too many service lines (max %d)", ErrInvalidInput, domain.MaxServiceLines)
	}

	for i, line := range req.Services {
		if line.ServiceID <= 0 {
			return fmt.Errorf("%w: services[%d].serviceID must be positive", ErrInvalidInput, i)
		}
		if line.Price < 0 {
			return fmt.Errorf("%w: services[%d].price must be non-negative", ErrInvalidInput, i)
		}
	}

	return nil
}
