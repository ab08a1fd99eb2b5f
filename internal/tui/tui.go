package tui

import (
	"context"
	"errors"

	"github.com/mkarev/go-school-admin/internal/service"
	"github.com/mkarev/go-school-admin/internal/session"
	"github.com/mkarev/go-school-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	sessions  *session.Store
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, sessions *session.Store, buildInfo models.AppBuildInfo) (*TUI, error) {
	if services == nil || sessions == nil {
		return nil, errors.New("tui: services and sessions are required")
	}
	return &TUI{services: services, sessions: sessions, buildInfo: buildInfo}, nil
}

// Run drives the whole interactive session and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.sessions, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
