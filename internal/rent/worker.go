package rent

import (
	"context"
	"time"

	"hundredgaj/internal/logger"
)

// OverdueWorker periodically persists the overdue status of late installments.
type OverdueWorker struct {
	service  Service
	interval time.Duration
}

func NewOverdueWorker(service Service, interval time.Duration) *OverdueWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &OverdueWorker{service: service, interval: interval}
}

func (w *OverdueWorker) Start(ctx context.Context) {
	logger.Info("Overdue rent worker started", "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.service.SyncOverdue(ctx); err != nil {
			logger.Error("Overdue sync failed", "error", err)
		}

		select {
		case <-ctx.Done():
			logger.Info("Overdue rent worker stopped")
			return
		case <-ticker.C:
		}
	}
}
