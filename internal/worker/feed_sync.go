package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CustomerImporter exposes the subset of application functionality
// required by the worker.
type CustomerImporter interface {
	SyncCustomers(ctx context.Context) (int, error)
}

// FeedSyncWorker periodically imports customers from the external feed.
type FeedSyncWorker struct {
	importer CustomerImporter
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewFeedSyncWorker constructs the feed import worker.
func NewFeedSyncWorker(importer CustomerImporter, interval time.Duration, logger *slog.Logger) *FeedSyncWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &FeedSyncWorker{
		importer: importer,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background imports.
func (w *FeedSyncWorker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go w.run(runCtx)
}

// Stop waits for the running import to finish.
func (w *FeedSyncWorker) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *FeedSyncWorker) run(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.syncOnce(ctx)
		}
	}
}

func (w *FeedSyncWorker) syncOnce(ctx context.Context) {
	added, err := w.importer.SyncCustomers(ctx)
	if err != nil {
		w.logger.Error("customer feed sync failed", slog.String("error", err.Error()))
		return
	}
	if added > 0 {
		w.logger.Info("customer feed sync finished", slog.Int("added", added))
	}
}
