package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/internal/service"
	"github.com/MKhiriev/go-lock-keeper/internal/vault"
	"github.com/MKhiriev/go-lock-keeper/models"
)

// SnapshotWarmer periodically renders every active vault so reads hit the
// snapshot cache after a TTL expiry.
type SnapshotWarmer struct {
	vaults   service.VaultService
	interval time.Duration
	logger   *logger.Logger
}

func NewSnapshotWarmer(vaults service.VaultService, interval time.Duration, log *logger.Logger) *SnapshotWarmer {
	return &SnapshotWarmer{
		vaults:   vaults,
		interval: interval,
		logger:   log.WithField("worker", "snapshot-warmer"),
	}
}

// Run warms once immediately and then every interval until ctx is done.
func (w *SnapshotWarmer) Run(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.warm(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Str("func", "*SnapshotWarmer.Run").Msg("stopped")
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *SnapshotWarmer) warm(ctx context.Context) int {
	views, err := w.vaults.ListVaults(ctx, models.VaultFilter{Status: vault.StatusActive.String()})
	if err != nil {
		w.logger.Err(err).Str("func", "*SnapshotWarmer.warm").Msg("listing active vaults failed")
		return 0
	}

	warmed := 0
	for _, v := range views {
		if ctx.Err() != nil {
			break
		}
		if _, err = w.vaults.GetVault(ctx, v.ID); err != nil {
			w.logger.Warn().Err(err).Str("vault", v.ID).Msg("warming snapshot failed")
			continue
		}
		warmed++
	}
	w.logger.Debug().Str("func", "*SnapshotWarmer.warm").Int("warmed", warmed).Msg("snapshots warmed")
	return warmed
}
