package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-lock-keeper/internal/adapter"
	"github.com/MKhiriev/go-lock-keeper/internal/client"
	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}
	if len(args) > 0 && args[0] == "build-info" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewCLILogger("go-lock-keeper-client", cfg.LogLevel)

	vaults, err := adapter.NewHTTPVaultAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating vault adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(vaults, cfg, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
