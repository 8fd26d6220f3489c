package storage

import (
	"context"
	"parkingsys/pkg/models"
	"time"
)

type IStorage interface {
	Driver() IDriverStorage
	Pass() IPassStorage
	Lot() ILotStorage
	Receipt() IReceiptStorage
	Close()
}

// IDriverStorage maps a normalized plate to its registered driver.
type IDriverStorage interface {
	Create(ctx context.Context, driver *models.Driver) error
	Get(ctx context.Context, plate string) (*models.Driver, error)
	GetAll(ctx context.Context) ([]*models.Driver, error)
}

// IPassStorage maps a normalized plate to its single active pass.
type IPassStorage interface {
	Create(ctx context.Context, plate string, pass models.ParkingPass) error
	Get(ctx context.Context, plate string) (models.ParkingPass, error)
	GetAll(ctx context.Context) ([]models.ParkingPass, error)
}

// ILotStorage is the physical lot: which plates are inside and since when.
type ILotStorage interface {
	Name() string
	Capacity() int
	Count() int
	IsFull() bool
	IsParked(plate string) bool
	Add(ctx context.Context, plate string) (time.Time, error)
	Remove(ctx context.Context, plate string) (time.Time, error)
	Plates() []string
}

type IReceiptStorage interface {
	Create(ctx context.Context, receipt *models.Receipt) error
	GetAll(ctx context.Context) ([]*models.Receipt, error)
}
