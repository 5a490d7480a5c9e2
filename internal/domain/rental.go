package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rental links one client and one vehicle for a period. It is created
// active with a zero total; Finalize runs exactly once, freezes the
// computed total and ends the lifecycle. The references point at the
// canonical repository entities, they are not copies.
type Rental struct {
	ID             string          `json:"id"`
	Client         *Client         `json:"client"`
	Vehicle        *Vehicle        `json:"vehicle"`
	PickupTime     time.Time       `json:"pickup_time"`
	PickupLocation string          `json:"pickup_location"`
	ReturnTime     *time.Time      `json:"return_time,omitempty"`
	ReturnLocation string          `json:"return_location,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Active         bool            `json:"active"`
}

func NewRental(id string, client *Client, vehicle *Vehicle, pickupTime time.Time, pickupLocation string) *Rental {
	return &Rental{
		ID:             id,
		Client:         client,
		Vehicle:        vehicle,
		PickupTime:     pickupTime,
		PickupLocation: pickupLocation,
		Total:          decimal.Zero,
		Active:         true,
	}
}

// Finalize records the return and freezes the total. The total is
// computed by the pricing package before this is called and is never
// recomputed afterward.
func (r *Rental) Finalize(returnTime time.Time, returnLocation string, total decimal.Decimal) {
	t := returnTime
	r.ReturnTime = &t
	r.ReturnLocation = returnLocation
	r.Total = total
	r.Active = false
}
