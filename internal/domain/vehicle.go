package domain

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type VehicleCategory string

const (
	VehicleCategorySmall  VehicleCategory = "SMALL"
	VehicleCategoryMedium VehicleCategory = "MEDIUM"
	VehicleCategorySUV    VehicleCategory = "SUV"
)

var dailyRates = map[VehicleCategory]decimal.Decimal{
	VehicleCategorySmall:  decimal.NewFromInt(100),
	VehicleCategoryMedium: decimal.NewFromInt(150),
	VehicleCategorySUV:    decimal.NewFromInt(200),
}

// Plate formats: legacy "AAA-9999" and Mercosul "AAA9A99".
var (
	legacyPlatePattern   = regexp.MustCompile(`^[A-Z]{3}-\d{4}$`)
	mercosulPlatePattern = regexp.MustCompile(`^[A-Z]{3}\d[A-Z]\d{2}$`)
)

// Vehicle is keyed by plate. The category fixes the daily rate;
// Available is flipped by the rent/return operations, never directly.
type Vehicle struct {
	Plate     string          `json:"plate"`
	Name      string          `json:"name"`
	Category  VehicleCategory `json:"category"`
	Available bool            `json:"available"`
}

func NewVehicle(plate, name string, category VehicleCategory) *Vehicle {
	return &Vehicle{Plate: plate, Name: name, Category: category, Available: true}
}

// DailyRate returns the fixed per-day rate for the category in
// currency units (Small 100, Medium 150, SUV 200).
func (c VehicleCategory) DailyRate() decimal.Decimal {
	return dailyRates[c]
}

func (c VehicleCategory) Valid() bool {
	_, ok := dailyRates[c]
	return ok
}

// ValidatePlate checks the plate against both accepted formats.
func ValidatePlate(plate string) error {
	if legacyPlatePattern.MatchString(plate) || mercosulPlatePattern.MatchString(plate) {
		return nil
	}
	return errors.Wrapf(ErrInvalidArgument, "plate %q must match AAA-9999 or AAA9A99", plate)
}
