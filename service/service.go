package service

import (
	"parkingsys/pkg/logger"
	"parkingsys/pkg/telemetry"
	"parkingsys/storage"

	"github.com/facebookgo/clock"
)

type IServiceManager interface {
	Parking() ParkingService
}

type service struct {
	parkingService ParkingService
}

func New(stg storage.IStorage, clk clock.Clock, tel *telemetry.Provider, log logger.ILogger) (IServiceManager, error) {
	parking, err := NewInstrumentedParkingService(NewParkingService(stg, clk, log), tel)
	if err != nil {
		log.Error("failed to instrument parking service", logger.Error(err))
		return nil, err
	}

	return &service{
		parkingService: parking,
	}, nil
}

func (s *service) Parking() ParkingService {
	return s.parkingService
}
