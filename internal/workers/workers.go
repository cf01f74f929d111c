package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/internal/service"
)

// Workers runs a set of workers concurrently.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the workers enabled by cfg. The result may be empty.
func NewWorkers(services *service.Services, cfg config.StructuredConfig, log *logger.Logger) *Workers {
	ws := &Workers{}
	if cfg.Storage.Cache.WarmInterval > 0 && cfg.Storage.Cache.RedisURL != "" {
		ws.workers = append(ws.workers, NewSnapshotWarmer(services.VaultService, cfg.Storage.Cache.WarmInterval, log))
	}
	log.Debug().Str("func", "NewWorkers").Int("count", len(ws.workers)).Msg("workers created")
	return ws
}

// Run starts every worker in its own goroutine and returns immediately.
// Use Wait to block until all of them stopped.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every worker started by Run has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
