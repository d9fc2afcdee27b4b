package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Venue is a bookable physical location. Owned by the catalog;
// the booking engine only reads it.
type Venue struct {
	ID        int64
	Title     string
	Address   string
	Latitude  *float64
	Longitude *float64
	Capacity  int
	Price     float64 // base price, non-negative
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimeSlot is a named recurring time window shared across all venues
type TimeSlot struct {
	ID        int64
	Order     int
	From      types.TimeString
	To        types.TimeString
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service is an add-on offering that can be attached to a reservation
type Service struct {
	ID          int64
	Description string
	Price       float64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
