package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/session"
	"github.com/MKhiriev/go-blog-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNilDependency = errors.New("tui: services and session gate are required")

// TUI runs the terminal client on top of the client services.
type TUI struct {
	services  *service.ClientServices
	gate      *session.Gate
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, gate *session.Gate, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || gate == nil {
		return nil, errNilDependency
	}
	return &TUI{services: services, gate: gate, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
//
// Every credential change reported by the gate is delivered to the model as
// a sessionChangedMsg. Send runs on its own goroutine: the gate may
// broadcast from inside Update (an expired credential is purged while the
// router resolves a path) and a blocking Send there would stall the loop.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.gate, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.gate.Subscribe(func() {
		go program.Send(sessionChangedMsg{})
	})
	defer unsubscribe()

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal program stopped")
		return err
	}

	return nil
}
