package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/service"
	"github.com/mkarev/go-school-admin/internal/session"
	"github.com/mkarev/go-school-admin/internal/tui"
	"github.com/mkarev/go-school-admin/internal/workers"
)

type App struct {
	services *service.ClientServices
	sessions *session.Store
	tui      *tui.TUI
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, sessions *session.Store, ui *tui.TUI, jobs *workers.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || sessions == nil || ui == nil {
		return nil, errors.New("client: services, sessions and ui are required")
	}

	return &App{
		services: services,
		sessions: sessions,
		tui:      ui,
		workers:  jobs,
		logger:   logger,
	}, nil
}

// Run restores any persisted session, starts the background workers, and
// hands control to the terminal UI until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.services.AuthService.Restore(ctx); err != nil {
		// A broken local session file must not brick the client; start
		// logged out instead.
		a.logger.Warn().Err(err).Msg("could not restore session, starting logged out")
	}

	if a.workers != nil {
		a.workers.Run()
		defer a.workers.Stop()
	}

	if err := a.tui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
