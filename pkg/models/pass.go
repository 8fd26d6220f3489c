package models

import (
	"fmt"
	"math"
	"strings"
)

type PassTier string

const (
	TierStudent PassTier = "student"
	TierStaff   PassTier = "staff"
)

// Hourly rates in TL, fixed per tier.
const (
	StudentRate = 2.0
	StaffRate   = 3.0
)

// Hours a staff pass parks for free before billing starts.
const staffFreeHours = 1.0

func ParsePassTier(s string) (PassTier, error) {
	switch PassTier(strings.ToLower(strings.TrimSpace(s))) {
	case TierStudent:
		return TierStudent, nil
	case TierStaff:
		return TierStaff, nil
	}
	return "", NewValidationError("pass_type", fmt.Sprintf("%q must be 'student' or 'staff'", s))
}

func (t PassTier) Rate() float64 {
	if t == TierStaff {
		return StaffRate
	}
	return StudentRate
}

// Title is the display name used in listings, e.g. "StudentPass".
func (t PassTier) Title() string {
	switch t {
	case TierStudent:
		return "StudentPass"
	case TierStaff:
		return "StaffPass"
	}
	return string(t)
}

type ParkingPass interface {
	ID() string
	Driver() *Driver
	Tier() PassTier
	Rate() float64
	CalculateFee(hoursParked float64) (float64, error)
	String() string
}

type basePass struct {
	id     string
	driver *Driver
	rate   float64
}

func (p basePass) ID() string      { return p.id }
func (p basePass) Driver() *Driver { return p.driver }
func (p basePass) Rate() float64   { return p.rate }

func checkHours(hoursParked float64) error {
	if hoursParked < 0 || math.IsNaN(hoursParked) {
		return NewValidationError("hours", "parked hours cannot be negative")
	}
	return nil
}

// StudentPass bills every hour at the student rate.
type StudentPass struct {
	basePass
}

func NewStudentPass(id string, driver *Driver) *StudentPass {
	return &StudentPass{basePass{id: id, driver: driver, rate: StudentRate}}
}

func (p *StudentPass) Tier() PassTier { return TierStudent }

func (p *StudentPass) CalculateFee(hoursParked float64) (float64, error) {
	if err := checkHours(hoursParked); err != nil {
		return 0, err
	}
	return hoursParked * p.rate, nil
}

func (p *StudentPass) String() string {
	return fmt.Sprintf("Student Pass (ID: %s) - Rate: %.1f TL/hour", p.id, p.rate)
}

// StaffPass parks the first hour for free, then bills at the staff rate.
type StaffPass struct {
	basePass
}

func NewStaffPass(id string, driver *Driver) *StaffPass {
	return &StaffPass{basePass{id: id, driver: driver, rate: StaffRate}}
}

func (p *StaffPass) Tier() PassTier { return TierStaff }

func (p *StaffPass) CalculateFee(hoursParked float64) (float64, error) {
	if err := checkHours(hoursParked); err != nil {
		return 0, err
	}
	return math.Max(0, hoursParked-staffFreeHours) * p.rate, nil
}

func (p *StaffPass) String() string {
	return fmt.Sprintf("Staff Pass (ID: %s) - Rate: %.1f TL/hour (First hour free)", p.id, p.rate)
}

// NewPass returns the pass variant for tier.
func NewPass(tier PassTier, id string, driver *Driver) (ParkingPass, error) {
	switch tier {
	case TierStudent:
		return NewStudentPass(id, driver), nil
	case TierStaff:
		return NewStaffPass(id, driver), nil
	}
	return nil, NewValidationError("pass_type", fmt.Sprintf("unknown tier %q", tier))
}
