package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Reservation represents a confirmed booking of one venue for one time slot on one date
type Reservation struct {
	ID      int64
	UserID  int64
	VenueID int64
	SlotID  int64
	Date    time.Time // calendar date, no time component

	// Optional free-text fields
	Theme    *string
	PhotoRef *string

	// Price snapshots taken at booking time; catalog price changes
	// never alter persisted reservations
	VenuePrice float64
	TotalPrice float64

	Active bool

	// Denormalized display data joined from the catalog
	VenueTitle string
	SlotFrom   types.TimeString
	SlotTo     types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation has not been soft-deleted
func (r *Reservation) IsActive() bool {
	return r.Active
}

// PricingValid returns true if the total price is not below the venue price
func (r *Reservation) PricingValid() bool {
	return r.TotalPrice >= r.VenuePrice
}

// SlotWindow returns the reserved slot hours as "HH:MM - HH:MM"
func (r *Reservation) SlotWindow() string {
	return r.SlotFrom.String() + " - " + r.SlotTo.String()
}

// ReservationServiceLine is an add-on service attached to a reservation.
// Price is a snapshot of the service price at booking time. Lines are created
// atomically with their reservation and are never updated afterwards.
type ReservationServiceLine struct {
	ID            int64
	ReservationID int64
	ServiceID     int64
	Price         float64

	// Denormalized display data
	ServiceName string

	CreatedAt time.Time
	UpdatedAt time.Time
}
