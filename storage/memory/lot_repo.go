package memory

import (
	"context"
	"parkingsys/pkg/logger"
	"parkingsys/pkg/models"
	"parkingsys/storage"
	"sort"
	"sync"
	"time"

	"github.com/facebookgo/clock"
)

type lotRepo struct {
	mu       sync.RWMutex
	name     string
	capacity int
	parked   map[string]time.Time
	clock    clock.Clock
	log      logger.ILogger
}

func NewLotRepo(name string, capacity int, clk clock.Clock, log logger.ILogger) (storage.ILotStorage, error) {
	if capacity <= 0 {
		return nil, models.NewValidationError("capacity", "capacity must be a positive integer")
	}
	return &lotRepo{
		name:     name,
		capacity: capacity,
		parked:   make(map[string]time.Time),
		clock:    clk,
		log:      log,
	}, nil
}

func (r *lotRepo) Name() string  { return r.name }
func (r *lotRepo) Capacity() int { return r.capacity }

func (r *lotRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.parked)
}

func (r *lotRepo) IsFull() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.parked) >= r.capacity
}

func (r *lotRepo) IsParked(plate string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.parked[models.NormalizePlate(plate)]
	return ok
}

// Add records the entry time of plate. A full lot is reported before a
// duplicate entry.
func (r *lotRepo) Add(ctx context.Context, plate string) (time.Time, error) {
	plate = models.NormalizePlate(plate)

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.parked) >= r.capacity {
		r.log.Warning("parking lot is full", logger.String("lot", r.name), logger.String("plate", plate))
		return time.Time{}, models.NewFullLotError(r.name, r.capacity)
	}
	if _, ok := r.parked[plate]; ok {
		r.log.Warning("vehicle already parked", logger.String("plate", plate))
		return time.Time{}, models.NewAlreadyParkedError(plate)
	}

	entry := r.clock.Now()
	r.parked[plate] = entry
	r.log.Info("vehicle parked", logger.String("plate", plate), logger.Time("entry", entry))
	return entry, nil
}

// Remove deletes plate from the lot and returns its entry time.
func (r *lotRepo) Remove(ctx context.Context, plate string) (time.Time, error) {
	plate = models.NormalizePlate(plate)

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.parked[plate]
	if !ok {
		r.log.Warning("vehicle not parked", logger.String("plate", plate))
		return time.Time{}, models.NewVehicleNotParkedError(plate)
	}
	delete(r.parked, plate)
	r.log.Info("vehicle removed", logger.String("plate", plate))
	return entry, nil
}

func (r *lotRepo) Plates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plates := make([]string, 0, len(r.parked))
	for p := range r.parked {
		plates = append(plates, p)
	}
	sort.Strings(plates)
	return plates
}
