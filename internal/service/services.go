package service

import (
	"time"

	"github.com/MKhiriev/go-lock-keeper/internal/asset"
	"github.com/MKhiriev/go-lock-keeper/internal/cache"
	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/internal/store"
	"github.com/MKhiriev/go-lock-keeper/internal/utils"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
	VaultService   VaultService
}

func NewServices(
	repos *store.Repositories,
	snapshots cache.SnapshotCache,
	book *asset.Book,
	cfg config.StructuredConfig,
	clock func() time.Time,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
		VaultService:   NewVaultService(repos.VaultRepository, snapshots, book, utils.NewUUIDGenerator(), clock, logger),
	}, nil
}
