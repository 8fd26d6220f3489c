package memory

import (
	"context"
	"testing"
	"time"

	"parkingsys/pkg/logger"
	"parkingsys/pkg/models"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLot(t *testing.T, capacity int) (*lotRepo, *clock.Mock) {
	t.Helper()
	clk := clock.NewMock()
	lot, err := NewLotRepo("Test Lot", capacity, clk, logger.NewNop())
	require.NoError(t, err)
	return lot.(*lotRepo), clk
}

func TestNewLotRepoRejectsNonPositiveCapacity(t *testing.T) {
	for _, c := range []int{0, -3} {
		_, err := NewLotRepo("Bad", c, clock.NewMock(), logger.NewNop())
		assert.ErrorIs(t, err, models.ErrValidation)
	}
}

func TestLotAddRecordsClockTime(t *testing.T) {
	lot, clk := newTestLot(t, 2)
	clk.Add(90 * time.Minute)

	entry, err := lot.Add(context.Background(), "aa 11")
	require.NoError(t, err)
	assert.Equal(t, clk.Now(), entry)
	assert.True(t, lot.IsParked("AA11"))
	assert.True(t, lot.IsParked("a a 1 1"))
	assert.Equal(t, 1, lot.Count())
	assert.False(t, lot.IsFull())
}

func TestLotFull(t *testing.T) {
	lot, _ := newTestLot(t, 1)
	ctx := context.Background()

	_, err := lot.Add(ctx, "AA11")
	require.NoError(t, err)
	assert.True(t, lot.IsFull())

	_, err = lot.Add(ctx, "BB22")
	assert.ErrorIs(t, err, models.ErrFullLot)
	assert.False(t, lot.IsParked("BB22"))
}

func TestLotFullReportedBeforeDuplicate(t *testing.T) {
	lot, _ := newTestLot(t, 1)
	ctx := context.Background()

	_, _ = lot.Add(ctx, "AA11")
	_, err := lot.Add(ctx, "AA11")
	assert.ErrorIs(t, err, models.ErrFullLot)
}

func TestLotDuplicatePark(t *testing.T) {
	lot, _ := newTestLot(t, 3)
	ctx := context.Background()

	_, _ = lot.Add(ctx, "AA11")
	_, err := lot.Add(ctx, "aa11")
	assert.ErrorIs(t, err, models.ErrAlreadyParked)
	assert.Equal(t, 1, lot.Count())
}

func TestLotRemove(t *testing.T) {
	lot, clk := newTestLot(t, 3)
	ctx := context.Background()

	entry, _ := lot.Add(ctx, "AA11")
	clk.Add(2 * time.Hour)

	got, err := lot.Remove(ctx, "AA 11")
	require.NoError(t, err)
	assert.Equal(t, entry, got)
	assert.False(t, lot.IsParked("AA11"))
	assert.Equal(t, 0, lot.Count())
}

func TestLotRemoveNotParked(t *testing.T) {
	lot, _ := newTestLot(t, 3)

	_, err := lot.Remove(context.Background(), "ZZ99")
	assert.ErrorIs(t, err, models.ErrVehicleNotParked)
	assert.True(t, models.IsParkingError(err))
}

func TestLotPlatesSorted(t *testing.T) {
	lot, _ := newTestLot(t, 3)
	ctx := context.Background()

	_, _ = lot.Add(ctx, "CC33")
	_, _ = lot.Add(ctx, "AA11")
	_, _ = lot.Add(ctx, "BB22")

	assert.Equal(t, []string{"AA11", "BB22", "CC33"}, lot.Plates())
	assert.Equal(t, "Test Lot", lot.Name())
	assert.Equal(t, 3, lot.Capacity())
}
