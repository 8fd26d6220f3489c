package models

import (
	"fmt"
	"strings"
)

// Driver owns exactly one Vehicle and is immutable once registered.
type Driver struct {
	fullName string
	id       string
	vehicle  *Vehicle
}

func NewDriver(fullName, driverID string, vehicle *Vehicle) (*Driver, error) {
	id := strings.TrimSpace(driverID)
	if id == "" {
		return nil, NewValidationError("driver_id", "driver ID cannot be empty")
	}
	if vehicle == nil {
		return nil, NewValidationError("vehicle", "driver must own a vehicle")
	}
	return &Driver{
		fullName: strings.TrimSpace(fullName),
		id:       id,
		vehicle:  vehicle,
	}, nil
}

func (d *Driver) FullName() string  { return d.fullName }
func (d *Driver) ID() string        { return d.id }
func (d *Driver) Vehicle() *Vehicle { return d.vehicle }
func (d *Driver) Plate() string     { return d.vehicle.Plate() }

func (d *Driver) String() string {
	return fmt.Sprintf("Driver: %s (ID: %s), %s", d.fullName, d.id, d.vehicle)
}
