package network_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/session"
	"github.com/MKhiriev/go-indie-chat/internal/wallet"
	"github.com/MKhiriev/go-indie-chat/models"
)

// TestSession_LiveConversationSurfacesOverDevnet follows a conversation that
// is created empty while the session is connected and only later receives
// messages.
func TestSession_LiveConversationSurfacesOverDevnet(t *testing.T) {
	// Arrange
	srv, d := startDevnet(t)
	g := newGateway(t, srv.URL)
	signer, err := wallet.GenerateKeySigner()
	require.NoError(t, err)
	own := signer.Address()

	s := session.New(g, models.EnvironmentDev, config.ClientSession{
		NamespacePrefix:     "indie-talent/",
		StreamRetryInterval: time.Hour,
	}, nil, logger.Nop())
	t.Cleanup(s.Close)

	require.NoError(t, s.InitClient(context.Background(), signer))
	require.Eventually(t, func() bool {
		return d.Broker.Subscribers(models.EnvironmentDev, own) == 1
	}, 5*time.Second, 10*time.Millisecond)

	// Act
	conv, err := d.Registry.CreateConversation(models.EnvironmentDev, peerA, own, "indie-talent/live", nil)
	require.NoError(t, err)
	_, err = d.Registry.PostMessage(models.EnvironmentDev, peerA, conv.Topic, "hi there")
	require.NoError(t, err)
	_, err = d.Registry.PostMessage(models.EnvironmentDev, own, conv.Topic, "hello")
	require.NoError(t, err)

	// Assert
	require.Eventually(t, func() bool {
		return len(s.Snapshot().ConversationMessages[peerA]) == 2
	}, 5*time.Second, 10*time.Millisecond)

	st := s.Snapshot()
	assert.Equal(t, "indie-talent/live", st.Conversations[peerA].ConversationID)
	assert.Equal(t, "hi there", st.ConversationMessages[peerA][0].Content)
}
