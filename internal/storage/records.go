package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalRecord is the flat snapshot form of a rental. Client and
// vehicle are referenced by natural key only; embedding the entities
// would let the stored copies drift from the canonical repository
// ones. References are re-resolved on load.
type RentalRecord struct {
	ID             string          `json:"id"`
	ClientDocument string          `json:"client_document"`
	VehiclePlate   string          `json:"vehicle_plate"`
	PickupTime     time.Time       `json:"pickup_time"`
	PickupLocation string          `json:"pickup_location"`
	ReturnTime     *time.Time      `json:"return_time,omitempty"`
	ReturnLocation string          `json:"return_location,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Active         bool            `json:"active"`
}
