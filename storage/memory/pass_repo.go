package memory

import (
	"context"
	"parkingsys/pkg/logger"
	"parkingsys/pkg/models"
	"parkingsys/storage"
	"sync"
)

type passRepo struct {
	mu      sync.RWMutex
	byPlate map[string]models.ParkingPass
	order   []string
	log     logger.ILogger
}

func NewPassRepo(log logger.ILogger) storage.IPassStorage {
	return &passRepo{
		byPlate: make(map[string]models.ParkingPass),
		log:     log,
	}
}

func (r *passRepo) Create(ctx context.Context, plate string, pass models.ParkingPass) error {
	plate = models.NormalizePlate(plate)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byPlate[plate]; ok {
		r.log.Warning("pass already issued", logger.String("plate", plate), logger.String("pass_id", existing.ID()))
		return models.NewPassAlreadyIssuedError(plate, existing.Tier())
	}
	r.byPlate[plate] = pass
	r.order = append(r.order, plate)
	return nil
}

func (r *passRepo) Get(ctx context.Context, plate string) (models.ParkingPass, error) {
	plate = models.NormalizePlate(plate)

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byPlate[plate]
	if !ok {
		return nil, models.NewNoActivePassError(plate)
	}
	return p, nil
}

// GetAll returns passes in the order they were issued.
func (r *passRepo) GetAll(ctx context.Context) ([]models.ParkingPass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	passes := make([]models.ParkingPass, 0, len(r.order))
	for _, plate := range r.order {
		passes = append(passes, r.byPlate[plate])
	}
	return passes, nil
}
