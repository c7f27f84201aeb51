package tui

import (
	"strings"

	"github.com/MKhiriev/go-indie-chat/internal/session"
)

func (r RootModel) viewConnect() string {
	var b strings.Builder

	address := "-"
	if !r.state.Address.IsZero() {
		address = r.state.Address.String()
	}
	b.WriteString("Wallet: ")
	b.WriteString(address)
	b.WriteString("\n")
	b.WriteString("Messaging identity: ")
	b.WriteString(identityStatus(r.state))
	b.WriteString("\n")

	if r.connecting {
		b.WriteString("\n")
		b.WriteString(r.spinner.View())
		b.WriteString(" connecting, confirm the signature request...\n")
	}
	if r.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(r.errMsg))
		b.WriteString("\n")
	} else if r.state.LastError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(r.state.LastError))
		b.WriteString("\n")
	}
	r.writeStatus(&b)

	return renderPage(titleStyle.Render("INDIE CHAT"), b.String(), "c: connect | y: copy address | v: build info | q: quit")
}

func identityStatus(st session.State) string {
	switch st.Phase {
	case session.PhaseKeyCheckPending:
		return "checking..."
	case session.PhaseProvisioned:
		return "registered"
	case session.PhaseNotProvisioned:
		return "not registered, connecting creates one"
	case session.PhaseDisconnected:
		if st.Address.IsZero() {
			return "-"
		}
		return "disconnected"
	default:
		return "-"
	}
}
