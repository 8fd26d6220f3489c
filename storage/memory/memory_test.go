package memory

import (
	"context"
	"testing"
	"time"

	"parkingsys/config"
	"parkingsys/pkg/logger"
	"parkingsys/pkg/models"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(t *testing.T, name, id, plate string) *models.Driver {
	t.Helper()
	v, err := models.NewVehicle(plate, "car")
	require.NoError(t, err)
	d, err := models.NewDriver(name, id, v)
	require.NoError(t, err)
	return d
}

func TestNewStore(t *testing.T) {
	cfg := config.Config{LotName: "North", LotCapacity: 4}

	stg, err := New(cfg, clock.NewMock(), logger.NewNop())
	require.NoError(t, err)
	defer stg.Close()

	assert.Equal(t, "North", stg.Lot().Name())
	assert.Equal(t, 4, stg.Lot().Capacity())
	assert.Same(t, stg.Driver(), stg.Driver())
}

func TestNewStoreInvalidCapacity(t *testing.T) {
	_, err := New(config.Config{LotName: "North"}, clock.NewMock(), logger.NewNop())
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestDriverRepo(t *testing.T) {
	repo := NewDriverRepo(logger.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newDriver(t, "Ayse", "S-1", "aa 11")))
	require.NoError(t, repo.Create(ctx, newDriver(t, "Mehmet", "S-2", "BB22")))

	err := repo.Create(ctx, newDriver(t, "Other", "S-3", "AA11"))
	assert.ErrorIs(t, err, models.ErrDuplicatePlate)

	d, err := repo.Get(ctx, "a a11")
	require.NoError(t, err)
	assert.Equal(t, "Ayse", d.FullName())

	_, err = repo.Get(ctx, "ZZ99")
	assert.ErrorIs(t, err, models.ErrNotRegistered)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "AA11", all[0].Plate())
	assert.Equal(t, "BB22", all[1].Plate())
}

func TestPassRepo(t *testing.T) {
	repo := NewPassRepo(logger.NewNop())
	ctx := context.Background()
	d := newDriver(t, "Ayse", "S-1", "AA11")

	require.NoError(t, repo.Create(ctx, "AA11", models.NewStudentPass("AA11-1", d)))

	err := repo.Create(ctx, "aa 11", models.NewStaffPass("AA11-2", d))
	assert.ErrorIs(t, err, models.ErrPassAlreadyIssued)
	assert.Contains(t, err.Error(), "student")

	p, err := repo.Get(ctx, "AA11")
	require.NoError(t, err)
	assert.Equal(t, "AA11-1", p.ID())

	_, err = repo.Get(ctx, "BB22")
	assert.ErrorIs(t, err, models.ErrNoActivePass)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestReceiptRepoReturnsCopy(t *testing.T) {
	repo := NewReceiptRepo(logger.NewNop())
	ctx := context.Background()

	r := &models.Receipt{ID: uuid.New(), Plate: "AA11", Duration: time.Hour, Hours: 1, Fee: 2}
	require.NoError(t, repo.Create(ctx, r))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	all[0] = nil

	again, _ := repo.GetAll(ctx)
	assert.Same(t, r, again[0])
}
