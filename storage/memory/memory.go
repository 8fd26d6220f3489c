package memory

import (
	"parkingsys/config"
	"parkingsys/pkg/logger"
	"parkingsys/storage"

	"github.com/facebookgo/clock"
)

// Store keeps every repo in process memory; all state is lost on exit.
type Store struct {
	drivers  storage.IDriverStorage
	passes   storage.IPassStorage
	lot      storage.ILotStorage
	receipts storage.IReceiptStorage
	log      logger.ILogger
}

func New(cfg config.Config, clk clock.Clock, log logger.ILogger) (storage.IStorage, error) {
	lot, err := NewLotRepo(cfg.LotName, cfg.LotCapacity, clk, log)
	if err != nil {
		log.Error("failed to create parking lot", logger.Error(err))
		return nil, err
	}

	log.Info("in-memory storage ready",
		logger.String("lot", cfg.LotName),
		logger.Int("capacity", cfg.LotCapacity),
	)

	return &Store{
		drivers:  NewDriverRepo(log),
		passes:   NewPassRepo(log),
		lot:      lot,
		receipts: NewReceiptRepo(log),
		log:      log,
	}, nil
}

func (s *Store) Close() {
	s.log.Info("in-memory storage discarded", logger.Int("parked", s.lot.Count()))
}

func (s *Store) Driver() storage.IDriverStorage   { return s.drivers }
func (s *Store) Pass() storage.IPassStorage       { return s.passes }
func (s *Store) Lot() storage.ILotStorage         { return s.lot }
func (s *Store) Receipt() storage.IReceiptStorage { return s.receipts }
