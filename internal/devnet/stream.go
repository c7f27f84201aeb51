package devnet

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/utils"
)

// streamConversations upgrades to a websocket and pushes a
// network.StreamEvent for every conversation created with the caller, and
// every message posted to one of them, until either side closes.
func (h *Handler) streamConversations(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	env, _ := utils.GetEnvironmentFromContext(r.Context())
	address, _ := utils.GetAddressFromContext(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	events, cancel := h.broker.Subscribe(env, address)
	defer cancel()

	// The reader only detects the peer going away; clients send nothing.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamPingInterval)
	defer ticker.Stop()

	log.Info().Str("address", address.String()).Msg("conversation stream opened")
	defer log.Info().Str("address", address.String()).Msg("conversation stream closed")

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				log.Err(err).Msg("error writing stream event")
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteTimeout)); err != nil {
				return
			}
		case <-closed:
			return
		case <-h.done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "devnet shutting down"),
				time.Now().Add(streamWriteTimeout))
			return
		}
	}
}
