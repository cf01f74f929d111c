package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-lock-keeper/internal/asset"
	"github.com/MKhiriev/go-lock-keeper/internal/cache"
	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/handler"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/internal/manifest"
	"github.com/MKhiriev/go-lock-keeper/internal/server"
	"github.com/MKhiriev/go-lock-keeper/internal/service"
	"github.com/MKhiriev/go-lock-keeper/internal/store"
	"github.com/MKhiriev/go-lock-keeper/internal/workers"
	"github.com/MKhiriev/go-lock-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("go-lock-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !logger.SetGlobalLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = build.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	ctx = log.WithContext(ctx)

	repos, err := store.NewRepositories(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer repos.Close()

	snapshots, err := cache.NewSnapshotCache(ctx, cfg.Storage.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating snapshot cache")
	}
	defer snapshots.Close()

	services, err := service.NewServices(repos, snapshots, asset.NewBook(log), *cfg, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.VaultService.Restore(ctx); err != nil {
		log.Fatal().Err(err).Msg("error restoring vaults")
	}

	if cfg.Deploy.ManifestPath != "" {
		m, loadErr := manifest.LoadFile(cfg.Deploy.ManifestPath)
		if loadErr != nil {
			log.Fatal().Err(loadErr).Str("path", cfg.Deploy.ManifestPath).Msg("error loading deployment manifest")
		}
		if err = services.VaultService.ApplyManifest(ctx, m); err != nil {
			log.Fatal().Err(err).Msg("error applying deployment manifest")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bg := workers.NewWorkers(services, *cfg, log)
	bg.Run(ctx)

	srv.RunServer()

	stop()
	bg.Wait()
	log.Info().Msg("server stopped")
}
