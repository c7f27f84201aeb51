package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/session"
	"github.com/MKhiriev/go-indie-chat/models"
)

var ErrUserQuit = errors.New("user quit")

// Session is the part of the messaging session the UI reads and drives.
type Session interface {
	Snapshot() session.State
	Subscribe() (<-chan session.State, func())
	Connect(ctx context.Context) error
	Disconnect()
}

type TUI struct {
	session   Session
	buildInfo models.AppBuildInfo
	log       *logger.Logger
}

func New(sess Session, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{session: sess, buildInfo: buildInfo, log: log}
}

// Run shows the client until the user quits. The program renders only
// states delivered by the session subscription.
func (t *TUI) Run(ctx context.Context) error {
	states, unsubscribe := t.session.Subscribe()
	defer unsubscribe()

	root := NewRootModel(ctx, t.session, states, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.log.Info().Msg("user quit")
	}
	return nil
}
