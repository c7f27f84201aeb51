package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const streamHandshakeTimeout = 10 * time.Second

// StreamConversations implements [ConversationStreamer] over a websocket
// subscription. Both conversation and message events yield the affected
// conversation; other frames and frames failing validation are skipped.
func (c *gatewayClient) StreamConversations(ctx context.Context) (<-chan Conversation, error) {
	wsURL := websocketURL(c.gateway.baseURL) + RouteStream

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.token)
	header.Set(HeaderEnvironment, string(c.env))

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: streamHandshakeTimeout,
	}
	conn, resp, err := dialer.DialContext(ctx, wsURL, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("open conversation stream: %w", err)
	}

	out := make(chan Conversation)
	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = conn.Close()
	}()

	go func() {
		defer close(out)
		defer close(done)

		log := c.gateway.logger
		for {
			var event StreamEvent
			if err := conn.ReadJSON(&event); err != nil {
				if ctx.Err() == nil && !isNormalClose(err) {
					log.Warn().Err(err).Msg("conversation stream dropped")
				}
				return
			}
			if event.Type != StreamEventConversation && event.Type != StreamEventMessage {
				continue
			}

			info, err := event.Conversation.Model()
			if err != nil {
				log.Warn().Err(err).Msg("skipping malformed streamed conversation")
				continue
			}

			select {
			case out <- &gatewayConversation{client: c, info: info}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func websocketURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return baseURL
	}
}

func isNormalClose(err error) bool {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return closeErr.Code == websocket.CloseNormalClosure || closeErr.Code == websocket.CloseGoingAway
	}
	return false
}
