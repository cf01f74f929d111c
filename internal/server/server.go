package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/handler"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	stopOnce sync.Once
	stop     chan struct{}
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoHTTPHandler
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
		stop:       make(chan struct{}),
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Shutdown makes a running RunServer return after a graceful shutdown.
func (s *server) Shutdown() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// run serves until ctx is done, Shutdown is called or the listener fails.
func (s *server) run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	case <-s.stop:
	}

	s.httpServer.Shutdown()
	err := <-serveErr
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}
