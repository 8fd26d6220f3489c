package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "06BB66", NormalizePlate("06 bb 66"))
	assert.Equal(t, "AA11", NormalizePlate(" aa11 "))
	assert.Equal(t, "", NormalizePlate("   "))
}

func TestNewVehicle(t *testing.T) {
	v, err := NewVehicle("34 abc 12", "car")
	require.NoError(t, err)
	assert.Equal(t, "34ABC12", v.Plate())
	assert.Equal(t, "car", v.Type())
	assert.Equal(t, "Vehicle: car, Plate: 34ABC12", v.String())
}

func TestNewVehicleRejectsEmptyPlate(t *testing.T) {
	for _, plate := range []string{"", "   "} {
		_, err := NewVehicle(plate, "car")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "plate", ve.Field)
	}
}

func TestNewDriver(t *testing.T) {
	v, _ := NewVehicle("AA11", "motorcycle")

	d, err := NewDriver("Ayse Kaya", "S-100", v)
	require.NoError(t, err)
	assert.Equal(t, "Ayse Kaya", d.FullName())
	assert.Equal(t, "S-100", d.ID())
	assert.Equal(t, "AA11", d.Plate())
	assert.Same(t, v, d.Vehicle())
	assert.Contains(t, d.String(), "(ID: S-100)")
}

func TestNewDriverValidation(t *testing.T) {
	v, _ := NewVehicle("AA11", "car")

	_, err := NewDriver("Ayse", " ", v)
	assert.True(t, IsValidationError(err))

	_, err = NewDriver("Ayse", "S-1", nil)
	assert.True(t, IsValidationError(err))
}

func TestParsePassTier(t *testing.T) {
	tier, err := ParsePassTier(" Student ")
	require.NoError(t, err)
	assert.Equal(t, TierStudent, tier)

	tier, err = ParsePassTier("STAFF")
	require.NoError(t, err)
	assert.Equal(t, TierStaff, tier)

	_, err = ParsePassTier("visitor")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTierRates(t *testing.T) {
	assert.Equal(t, 2.0, TierStudent.Rate())
	assert.Equal(t, 3.0, TierStaff.Rate())
	assert.Equal(t, "StudentPass", TierStudent.Title())
	assert.Equal(t, "StaffPass", TierStaff.Title())
}

func TestStudentPassFee(t *testing.T) {
	p := NewStudentPass("AA11-1", nil)

	for _, h := range []float64{0, 0.25, 1, 3, 7.5, 24} {
		fee, err := p.CalculateFee(h)
		require.NoError(t, err)
		assert.InDelta(t, h*2.0, fee, 1e-9, "hours=%v", h)
	}

	fee, _ := p.CalculateFee(3)
	assert.Equal(t, 6.0, fee)
}

func TestStaffPassFee(t *testing.T) {
	p := NewStaffPass("BB22-1", nil)

	cases := map[float64]float64{
		0:   0,
		0.5: 0,
		1:   0,
		1.5: 1.5,
		3:   6,
		10:  27,
	}
	for hours, want := range cases {
		fee, err := p.CalculateFee(hours)
		require.NoError(t, err)
		assert.InDelta(t, want, fee, 1e-9, "hours=%v", hours)
	}
}

func TestPassRejectsNegativeHours(t *testing.T) {
	for _, p := range []ParkingPass{NewStudentPass("x", nil), NewStaffPass("y", nil)} {
		_, err := p.CalculateFee(-0.1)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestNewPassSelectsVariant(t *testing.T) {
	v, _ := NewVehicle("AA11", "car")
	d, _ := NewDriver("Ayse", "S-1", v)

	p, err := NewPass(TierStaff, "AA11-20260101120000", d)
	require.NoError(t, err)
	assert.IsType(t, &StaffPass{}, p)
	assert.Equal(t, TierStaff, p.Tier())
	assert.Equal(t, 3.0, p.Rate())
	assert.Same(t, d, p.Driver())
	assert.Contains(t, p.String(), "First hour free")

	p, err = NewPass(TierStudent, "AA11-20260101120000", d)
	require.NoError(t, err)
	assert.IsType(t, &StudentPass{}, p)

	_, err = NewPass(PassTier("vip"), "x", d)
	assert.Error(t, err)
}

func TestParkingErrorMatching(t *testing.T) {
	err := NewFullLotError("North", 1)
	assert.ErrorIs(t, err, ErrFullLot)
	assert.NotErrorIs(t, err, ErrDuplicatePlate)
	assert.True(t, IsParkingError(err))
	assert.False(t, IsValidationError(err))
	assert.Equal(t, ErrCodeFullLot, GetErrorCode(err))

	wrapped := fmt.Errorf("park: %w", NewVehicleNotParkedError("AA11"))
	assert.ErrorIs(t, wrapped, ErrVehicleNotParked)
	assert.Equal(t, ErrCodeVehicleNotParked, GetErrorCode(wrapped))
	assert.Contains(t, wrapped.Error(), "AA11")

	assert.Equal(t, ErrCodeNone, GetErrorCode(errors.New("boom")))
	assert.Equal(t, "full_lot", ErrCodeFullLot.String())
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("hours", "parked hours cannot be negative")
	assert.Equal(t, "invalid hours: parked hours cannot be negative", err.Error())
	assert.False(t, IsParkingError(err))
	assert.Equal(t, ErrCodeNone, GetErrorCode(err))
}
