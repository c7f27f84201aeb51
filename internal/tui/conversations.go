package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-indie-chat/models"
)

func (r RootModel) updateConversations(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if r.selected > 0 {
			r.selected--
		}
	case key.Matches(msg, keys.down):
		if r.selected < len(r.peers)-1 {
			r.selected++
		}
	case key.Matches(msg, keys.enter):
		if r.selected < len(r.peers) {
			r.openPeer = r.peers[r.selected]
			r.refreshViewport()
			r.viewport.GotoBottom()
		}
	}
	return r, nil
}

func (r RootModel) updateMessages(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		r.openPeer = ""
		return r, nil
	}

	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

func (r RootModel) viewConversations() string {
	var b strings.Builder

	b.WriteString("Wallet: ")
	b.WriteString(r.state.Address.String())
	b.WriteString("\n\n")

	switch {
	case r.loading():
		b.WriteString(r.spinner.View())
		b.WriteString(" loading conversations...\n")
	case len(r.peers) == 0:
		b.WriteString("No conversations yet.\n")
	}

	for i, peer := range r.peers {
		line := fmt.Sprintf("%-14s %s", peer.Short(), fitText(lastMessage(r.state.ConversationMessages[peer]), 48))
		if i == r.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	r.writeStatus(&b)

	return renderPage(titleStyle.Render("CONVERSATIONS"), b.String(), "↑/↓: select | enter: open | d: disconnect | y: copy address | q: quit")
}

func (r RootModel) viewMessages() string {
	title := titleStyle.Render("CHAT WITH " + r.openPeer.Short())
	return renderPage(title, r.viewport.View(), "↑/↓: scroll | esc: back | d: disconnect | q: quit")
}

// refreshViewport renders the history of the open peer into the viewport.
func (r *RootModel) refreshViewport() {
	if r.openPeer.IsZero() {
		return
	}
	r.viewport.SetContent(renderHistory(r.state.ConversationMessages[r.openPeer], r.state.Address, r.viewport.Width))
}

func renderHistory(msgs []models.ChatMessage, own models.Address, width int) string {
	var b strings.Builder
	for _, m := range msgs {
		stamp := m.SentAt.Local().Format("02.01 15:04")
		if m.Direction(own) == models.DirectionSent {
			line := fmt.Sprintf("%s  %s", m.Content, stamp)
			b.WriteString(sentStyle.Render(alignRight(line, width)))
		} else {
			b.WriteString(receivedStyle.Render(fmt.Sprintf("%s  %s", stamp, m.Content)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func lastMessage(msgs []models.ChatMessage) string {
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1].Content
}

func (r RootModel) writeStatus(b *strings.Builder) {
	if r.status == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(r.status))
	b.WriteString("\n")
}
