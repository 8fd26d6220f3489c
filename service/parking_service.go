package service

import (
	"context"
	"fmt"
	"time"

	"parkingsys/pkg/logger"
	"parkingsys/pkg/models"
	"parkingsys/storage"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"
)

const passIDLayout = "20060102150405"

type ParkingService interface {
	Register(ctx context.Context, fullName, driverID, plate, vehicleType string) (*models.Driver, error)
	IssuePass(ctx context.Context, plate, passType string) (models.ParkingPass, error)
	Park(ctx context.Context, plate string) (time.Time, error)
	RemoveAndBill(ctx context.Context, plate string) (*models.Receipt, error)
	ListPasses(ctx context.Context) ([]models.PassStatus, error)
	Receipts(ctx context.Context) ([]*models.Receipt, error)
	Occupancy(ctx context.Context) models.Occupancy
}

type parkingService struct {
	stg   storage.IStorage
	clock clock.Clock
	log   logger.ILogger
}

func NewParkingService(stg storage.IStorage, clk clock.Clock, log logger.ILogger) ParkingService {
	return &parkingService{
		stg:   stg,
		clock: clk,
		log:   log,
	}
}

func (s *parkingService) Register(ctx context.Context, fullName, driverID, plate, vehicleType string) (*models.Driver, error) {
	vehicle, err := models.NewVehicle(plate, vehicleType)
	if err != nil {
		return nil, err
	}
	driver, err := models.NewDriver(fullName, driverID, vehicle)
	if err != nil {
		return nil, err
	}
	if err := s.stg.Driver().Create(ctx, driver); err != nil {
		return nil, err
	}

	s.log.Info("driver registered",
		logger.String("plate", vehicle.Plate()),
		logger.String("driver_id", driver.ID()),
	)
	return driver, nil
}

// IssuePass checks registration, then uniqueness, then the requested tier.
func (s *parkingService) IssuePass(ctx context.Context, plate, passType string) (models.ParkingPass, error) {
	plate = models.NormalizePlate(plate)

	driver, err := s.stg.Driver().Get(ctx, plate)
	if err != nil {
		return nil, err
	}
	if existing, err := s.stg.Pass().Get(ctx, plate); err == nil {
		return nil, models.NewPassAlreadyIssuedError(plate, existing.Tier())
	}

	tier, err := models.ParsePassTier(passType)
	if err != nil {
		return nil, err
	}

	id := fmt.Sprintf("%s-%s", plate, s.clock.Now().Format(passIDLayout))
	pass, err := models.NewPass(tier, id, driver)
	if err != nil {
		return nil, err
	}
	if err := s.stg.Pass().Create(ctx, plate, pass); err != nil {
		return nil, err
	}

	s.log.Info("pass issued",
		logger.String("plate", plate),
		logger.String("pass_id", id),
		logger.String("tier", string(tier)),
	)
	return pass, nil
}

func (s *parkingService) Park(ctx context.Context, plate string) (time.Time, error) {
	plate = models.NormalizePlate(plate)

	if _, err := s.stg.Pass().Get(ctx, plate); err != nil {
		return time.Time{}, err
	}
	return s.stg.Lot().Add(ctx, plate)
}

func (s *parkingService) RemoveAndBill(ctx context.Context, plate string) (*models.Receipt, error) {
	plate = models.NormalizePlate(plate)

	if !s.stg.Lot().IsParked(plate) {
		return nil, models.NewVehicleNotParkedError(plate)
	}
	pass, err := s.stg.Pass().Get(ctx, plate)
	if err != nil {
		return nil, err
	}

	entry, err := s.stg.Lot().Remove(ctx, plate)
	if err != nil {
		return nil, err
	}
	exit := s.clock.Now()

	elapsed := exit.Sub(entry)
	if elapsed < 0 {
		s.log.Warning("clock moved backwards, billing zero duration",
			logger.String("plate", plate),
			logger.Duration("elapsed", elapsed),
		)
		elapsed = 0
	}
	hours := elapsed.Seconds() / 3600.0

	fee, err := pass.CalculateFee(hours)
	if err != nil {
		return nil, fmt.Errorf("calculate fee for %s: %w", plate, err)
	}

	receipt := &models.Receipt{
		ID:        uuid.New(),
		Plate:     plate,
		PassID:    pass.ID(),
		Tier:      pass.Tier(),
		Rate:      pass.Rate(),
		EntryTime: entry,
		ExitTime:  exit,
		Duration:  elapsed,
		Hours:     hours,
		Fee:       fee,
	}
	if err := s.stg.Receipt().Create(ctx, receipt); err != nil {
		s.log.Error("failed to store receipt", logger.String("plate", plate), logger.Error(err))
		return nil, err
	}

	s.log.Info("vehicle billed",
		logger.String("plate", plate),
		logger.Float64("hours", hours),
		logger.Float64("fee", fee),
	)
	return receipt, nil
}

func (s *parkingService) ListPasses(ctx context.Context) ([]models.PassStatus, error) {
	passes, err := s.stg.Pass().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.PassStatus, 0, len(passes))
	for _, p := range passes {
		plate := p.Driver().Plate()
		out = append(out, models.PassStatus{
			Plate:      plate,
			PassID:     p.ID(),
			Tier:       p.Tier(),
			DriverName: p.Driver().FullName(),
			Parked:     s.stg.Lot().IsParked(plate),
		})
	}
	return out, nil
}

func (s *parkingService) Receipts(ctx context.Context) ([]*models.Receipt, error) {
	return s.stg.Receipt().GetAll(ctx)
}

func (s *parkingService) Occupancy(ctx context.Context) models.Occupancy {
	lot := s.stg.Lot()
	parked := lot.Count()
	return models.Occupancy{
		LotName:   lot.Name(),
		Capacity:  lot.Capacity(),
		Parked:    parked,
		Available: lot.Capacity() - parked,
	}
}
