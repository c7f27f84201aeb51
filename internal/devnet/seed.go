package devnet

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/models"
)

var seedScript = []struct {
	fromPeer bool
	content  string
}{
	{fromPeer: true, content: "Hi! I came across your profile and liked your portfolio."},
	{fromPeer: false, content: "Thanks! Happy to talk about the project."},
	{fromPeer: true, content: "Great, are you available next week?"},
}

// seed creates demo conversations between a new identity and every seed
// peer: one namespaced conversation with a short history per peer, plus one
// conversation of another application that sessions must not surface.
func (h *Handler) seed(r *http.Request, env models.Environment, address models.Address) {
	log := logger.FromRequest(r)

	for i, peer := range h.seedPeers {
		if peer.Equal(address) {
			continue
		}

		conversationID := fmt.Sprintf("%sdemo-%d", h.seedNamespace, i+1)
		conv, err := h.registry.CreateConversation(env, peer, address, conversationID, map[string]string{
			"source":  "devnet",
			"created": time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			log.Err(err).Str("peer", peer.String()).Msg("error seeding conversation")
			continue
		}

		for _, line := range seedScript {
			sender := address
			if line.fromPeer {
				sender = peer
			}
			if _, err := h.registry.PostMessage(env, sender, conv.Topic, line.content); err != nil {
				log.Err(err).Str("peer", peer.String()).Msg("error seeding message")
				break
			}
		}
	}

	if len(h.seedPeers) > 0 && !h.seedPeers[0].Equal(address) {
		if _, err := h.registry.CreateConversation(env, h.seedPeers[0], address, "other-app/hello", nil); err != nil {
			log.Err(err).Msg("error seeding foreign conversation")
		}
	}
}
