package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/session"
	"github.com/MKhiriev/go-blog-keeper/internal/workers"
)

var errNilDependency = errors.New("client: session gate and ui are required")

type App struct {
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp wires the expiry watcher over gate. The watcher runs for as long
// as the UI does.
func NewApp(gate *session.Gate, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if gate == nil || ui == nil {
		return nil, errNilDependency
	}

	watcher := workers.NewExpiryWatcher(gate, cfg.ExpiryCheckInterval, logger)

	return &App{
		ui:      ui,
		workers: workers.NewWorkers(watcher),
		logger:  logger,
	}, nil
}

// Run blocks until the user quits or the process receives SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	a.logger.Info().Err(err).Msg("client stopped")

	return err
}
