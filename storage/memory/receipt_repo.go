package memory

import (
	"context"
	"parkingsys/pkg/logger"
	"parkingsys/pkg/models"
	"parkingsys/storage"
	"sync"
)

type receiptRepo struct {
	mu       sync.RWMutex
	receipts []*models.Receipt
	log      logger.ILogger
}

func NewReceiptRepo(log logger.ILogger) storage.IReceiptStorage {
	return &receiptRepo{log: log}
}

func (r *receiptRepo) Create(ctx context.Context, receipt *models.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.receipts = append(r.receipts, receipt)
	return nil
}

func (r *receiptRepo) GetAll(ctx context.Context) ([]*models.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Receipt, len(r.receipts))
	copy(out, r.receipts)
	return out, nil
}
