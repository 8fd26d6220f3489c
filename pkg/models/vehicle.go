package models

import (
	"fmt"
	"strings"
)

// NormalizePlate upper-cases the plate and removes every space so that
// "06 bb 66" and "06BB66" address the same vehicle.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(plate, " ", ""))
}

type Vehicle struct {
	plate       string
	vehicleType string
}

func NewVehicle(plate, vehicleType string) (*Vehicle, error) {
	clean := NormalizePlate(plate)
	if clean == "" {
		return nil, NewValidationError("plate", "license plate cannot be empty")
	}
	return &Vehicle{
		plate:       clean,
		vehicleType: strings.TrimSpace(vehicleType),
	}, nil
}

func (v *Vehicle) Plate() string { return v.plate }
func (v *Vehicle) Type() string  { return v.vehicleType }

func (v *Vehicle) String() string {
	return fmt.Sprintf("Vehicle: %s, Plate: %s", v.vehicleType, v.plate)
}
