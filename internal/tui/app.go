package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-indie-chat/internal/session"
	"github.com/MKhiriev/go-indie-chat/models"
)

// RootModel renders the latest session state:
// 1) the connect screen while no client exists
// 2) the conversation list once a client is ready
// 3) the message view of the selected peer
type RootModel struct {
	ctx     context.Context
	session Session
	states  <-chan session.State

	state      session.State
	peers      []models.Address
	selected   int
	openPeer   models.Address
	connecting bool
	status     string
	errMsg     string

	spinner  spinner.Model
	viewport viewport.Model
	width    int
	height   int

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

func NewRootModel(ctx context.Context, sess Session, states <-chan session.State, buildInfo models.AppBuildInfo) RootModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return RootModel{
		ctx:       ctx,
		session:   sess,
		states:    states,
		state:     sess.Snapshot(),
		spinner:   sp,
		viewport:  viewport.New(80, 20),
		width:     80,
		height:    24,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(waitForState(r.states), r.spinner.Tick)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return r.updateKey(msg)

	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height
		r.viewport.Width = msg.Width - 4
		r.viewport.Height = max(msg.Height-8, 3)
		r.refreshViewport()
		return r, nil

	case stateMsg:
		r.applyState(session.State(msg))
		return r, waitForState(r.states)

	case stateClosedMsg:
		return r, tea.Quit

	case connectDoneMsg:
		r.connecting = false
		if msg.err != nil {
			r.errMsg = humanizeNetworkError(msg.err)
		}
		return r, nil

	case disconnectDoneMsg:
		r.status = "disconnected"
		return r, cmdClearStatus()

	case copiedMsg:
		if msg.err != nil {
			r.errMsg = "clipboard: " + msg.err.Error()
			return r, nil
		}
		r.status = "address copied"
		return r, cmdClearStatus()

	case clearStatusMsg:
		r.status = ""
		return r, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd
	}

	return r, nil
}

func (r RootModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if r.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			r.showBuildInfo = false
		}
		if msg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}
		return r, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		r.quitByUser = true
		return r, tea.Quit

	case key.Matches(msg, keys.buildInfo):
		r.showBuildInfo = true
		return r, nil

	case key.Matches(msg, keys.copy):
		if r.state.Address.IsZero() {
			return r, nil
		}
		return r, cmdCopy(r.state.Address.String())

	case key.Matches(msg, keys.connect):
		if r.state.Client != nil || r.connecting {
			return r, nil
		}
		r.connecting = true
		r.errMsg = ""
		return r, cmdConnect(r.ctx, r.session)

	case key.Matches(msg, keys.disconnect):
		if r.state.Client == nil {
			return r, nil
		}
		r.openPeer = ""
		return r, cmdDisconnect(r.session)
	}

	if r.state.Client == nil {
		return r, nil
	}
	if !r.openPeer.IsZero() {
		return r.updateMessages(msg)
	}
	return r.updateConversations(msg)
}

// applyState takes over st and keeps the selection on the same peer when
// it is still listed.
func (r *RootModel) applyState(st session.State) {
	var current models.Address
	if r.selected < len(r.peers) {
		current = r.peers[r.selected]
	}

	r.state = st
	r.peers = st.Peers()
	r.selected = 0
	for i, peer := range r.peers {
		if peer.Equal(current) {
			r.selected = i
			break
		}
	}

	if st.Client == nil {
		r.openPeer = ""
	}
	if _, ok := st.ConversationMessages[r.openPeer]; !ok {
		r.openPeer = ""
	}
	r.refreshViewport()
}

func (r RootModel) loading() bool {
	return r.connecting || r.state.LoadingConversations || r.state.LoadingMessages
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.state.Client == nil {
		return r.viewConnect()
	}
	if !r.openPeer.IsZero() {
		return r.viewMessages()
	}
	return r.viewConversations()
}
