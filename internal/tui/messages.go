package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-indie-chat/internal/session"
)

type stateMsg session.State

type stateClosedMsg struct{}

type connectDoneMsg struct {
	err error
}

type disconnectDoneMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

func waitForState(states <-chan session.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-states
		if !ok {
			return stateClosedMsg{}
		}
		return stateMsg(st)
	}
}

func cmdConnect(ctx context.Context, sess Session) tea.Cmd {
	return func() tea.Msg {
		return connectDoneMsg{err: sess.Connect(ctx)}
	}
}

func cmdDisconnect(sess Session) tea.Cmd {
	return func() tea.Msg {
		sess.Disconnect()
		return disconnectDoneMsg{}
	}
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
