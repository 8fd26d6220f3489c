package models

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a parking rule violation.
type ErrorCode int

const (
	ErrCodeNone ErrorCode = iota
	// Plate already has a registered driver
	ErrCodeDuplicatePlate
	// Lot reached its capacity
	ErrCodeFullLot
	// Plate is not in the lot
	ErrCodeVehicleNotParked
	// Plate is already in the lot
	ErrCodeAlreadyParked
	// No driver registered for the plate
	ErrCodeNotRegistered
	// Plate already holds a pass
	ErrCodePassAlreadyIssued
	// Plate holds no pass
	ErrCodeNoActivePass
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeDuplicatePlate:
		return "duplicate_plate"
	case ErrCodeFullLot:
		return "full_lot"
	case ErrCodeVehicleNotParked:
		return "vehicle_not_parked"
	case ErrCodeAlreadyParked:
		return "already_parked"
	case ErrCodeNotRegistered:
		return "not_registered"
	case ErrCodePassAlreadyIssued:
		return "pass_already_issued"
	case ErrCodeNoActivePass:
		return "no_active_pass"
	default:
		return "none"
	}
}

// ParkingError is the base error for every parking rule violation.
// Two ParkingErrors match under errors.Is when their codes are equal.
type ParkingError struct {
	Code    ErrorCode
	Plate   string
	Message string
}

func (e *ParkingError) Error() string {
	return e.Message
}

func (e *ParkingError) Is(target error) bool {
	t, ok := target.(*ParkingError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrDuplicatePlate    = &ParkingError{Code: ErrCodeDuplicatePlate, Message: "plate already registered"}
	ErrFullLot           = &ParkingError{Code: ErrCodeFullLot, Message: "parking lot is full"}
	ErrVehicleNotParked  = &ParkingError{Code: ErrCodeVehicleNotParked, Message: "vehicle not parked"}
	ErrAlreadyParked     = &ParkingError{Code: ErrCodeAlreadyParked, Message: "vehicle already parked"}
	ErrNotRegistered     = &ParkingError{Code: ErrCodeNotRegistered, Message: "driver not registered"}
	ErrPassAlreadyIssued = &ParkingError{Code: ErrCodePassAlreadyIssued, Message: "pass already issued"}
	ErrNoActivePass      = &ParkingError{Code: ErrCodeNoActivePass, Message: "no active pass"}
)

func NewDuplicatePlateError(plate string) *ParkingError {
	return &ParkingError{
		Code:    ErrCodeDuplicatePlate,
		Plate:   plate,
		Message: fmt.Sprintf("plate (%s) is already registered in the system", plate),
	}
}

func NewFullLotError(lotName string, capacity int) *ParkingError {
	return &ParkingError{
		Code:    ErrCodeFullLot,
		Message: fmt.Sprintf("'%s' parking lot is full, capacity %d reached", lotName, capacity),
	}
}

func NewVehicleNotParkedError(plate string) *ParkingError {
	return &ParkingError{
		Code:    ErrCodeVehicleNotParked,
		Plate:   plate,
		Message: fmt.Sprintf("vehicle with plate (%s) not found among parked vehicles", plate),
	}
}

func NewAlreadyParkedError(plate string) *ParkingError {
	return &ParkingError{
		Code:    ErrCodeAlreadyParked,
		Plate:   plate,
		Message: fmt.Sprintf("vehicle with plate (%s) is already parked", plate),
	}
}

func NewNotRegisteredError(plate string) *ParkingError {
	return &ParkingError{
		Code:    ErrCodeNotRegistered,
		Plate:   plate,
		Message: fmt.Sprintf("no driver registered for plate (%s), registration is required first", plate),
	}
}

func NewPassAlreadyIssuedError(plate string, tier PassTier) *ParkingError {
	return &ParkingError{
		Code:    ErrCodePassAlreadyIssued,
		Plate:   plate,
		Message: fmt.Sprintf("a %s pass has already been issued for plate (%s)", tier, plate),
	}
}

func NewNoActivePassError(plate string) *ParkingError {
	return &ParkingError{
		Code:    ErrCodeNoActivePass,
		Plate:   plate,
		Message: fmt.Sprintf("vehicle with plate (%s) does not have an active parking pass", plate),
	}
}

// ValidationError reports malformed input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is matches ErrValidation regardless of field.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var ErrValidation = errors.New("validation failed")

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func IsParkingError(err error) bool {
	var pe *ParkingError
	return errors.As(err, &pe)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// GetErrorCode returns ErrCodeNone for anything that is not a ParkingError.
func GetErrorCode(err error) ErrorCode {
	var pe *ParkingError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ErrCodeNone
}
