package subscription

import (
	"context"
	"time"

	"hundredgaj/internal/logger"
)

type Worker struct {
	service  Service
	interval time.Duration
}

func NewWorker(service Service, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Worker{service: service, interval: interval}
}

// Start sweeps once immediately and then on every tick until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	logger.Info("Quota refresh worker started", "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Quota refresh worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Worker) sweep(ctx context.Context) {
	n, err := w.service.RefreshDue(ctx)
	if err != nil {
		logger.Error("Quota refresh failed", "error", err)
		return
	}
	if n > 0 {
		logger.Info("Quotas refreshed", "subscriptions", n)
	}
}
