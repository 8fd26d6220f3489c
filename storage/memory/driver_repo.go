package memory

import (
	"context"
	"parkingsys/pkg/logger"
	"parkingsys/pkg/models"
	"parkingsys/storage"
	"sync"
)

type driverRepo struct {
	mu      sync.RWMutex
	byPlate map[string]*models.Driver
	order   []string
	log     logger.ILogger
}

func NewDriverRepo(log logger.ILogger) storage.IDriverStorage {
	return &driverRepo{
		byPlate: make(map[string]*models.Driver),
		log:     log,
	}
}

func (r *driverRepo) Create(ctx context.Context, driver *models.Driver) error {
	plate := driver.Plate()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byPlate[plate]; ok {
		r.log.Warning("duplicate plate registration", logger.String("plate", plate))
		return models.NewDuplicatePlateError(plate)
	}
	r.byPlate[plate] = driver
	r.order = append(r.order, plate)
	return nil
}

func (r *driverRepo) Get(ctx context.Context, plate string) (*models.Driver, error) {
	plate = models.NormalizePlate(plate)

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byPlate[plate]
	if !ok {
		return nil, models.NewNotRegisteredError(plate)
	}
	return d, nil
}

func (r *driverRepo) GetAll(ctx context.Context) ([]*models.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drivers := make([]*models.Driver, 0, len(r.order))
	for _, plate := range r.order {
		drivers = append(drivers, r.byPlate[plate])
	}
	return drivers, nil
}
