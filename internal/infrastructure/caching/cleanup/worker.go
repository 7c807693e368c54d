// Package cleanup provides the background widget-state sweeper
package cleanup

import (
	"context"
	"time"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/caching/manager"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
)

// Worker handles background cache cleanup operations
type Worker struct {
	cache  *manager.Manager
	config *Config
	logger *logging.ChanneledLogger
}

// NewWorker creates a new cleanup worker with injected configuration
func NewWorker(cache *manager.Manager, config *Config, logger *logging.ChanneledLogger) *Worker {
	return &Worker{
		cache:  cache,
		config: config,
		logger: logger,
	}
}

// Start begins the cleanup worker routine, using the configured interval
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.config.CleanupInterval)
	defer ticker.Stop()

	w.logger.Cache().Info("Cache cleanup worker started",
		"interval", w.config.CleanupInterval, "verbose", w.config.VerboseReporting)

	for {
		select {
		case <-ctx.Done():
			w.logger.Cache().Info("Cache cleanup worker stopping")
			return
		case <-ticker.C:
			w.performCleanup()
		}
	}
}

// performCleanup sweeps expired widget state out of every store
func (w *Worker) performCleanup() {
	start := time.Now()

	if w.config.VerboseReporting {
		chats, wizards, tallies := w.cache.Counts()
		w.logger.Cache().Info("Widget cache report before sweep",
			"chatSessions", chats, "wizards", wizards, "voteTallies", tallies)
	}

	removed := w.cache.PurgeExpired()
	duration := time.Since(start)

	if removed > 0 {
		w.logger.Cache().Info("Cache cleanup finished", "removed", removed, "duration", duration)
	} else if w.config.VerboseReporting {
		w.logger.Cache().Info("Cache cleanup completed - no expired items found", "duration", duration)
	}
}
