package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/models"
)

func connectStreaming(t *testing.T) (*Session, *streamingClient) {
	t.Helper()
	return connectStreamingWith(t, testSessionConfig())
}

func connectStreamingWith(t *testing.T, cfg config.ClientSession) (*Session, *streamingClient) {
	t.Helper()
	client := newStreamingClient()
	s := New(&fakeNetwork{client: client}, models.EnvironmentDev, cfg, nil, logger.Nop())
	t.Cleanup(s.Close)

	require.NoError(t, s.InitClient(context.Background(), fakeSigner{address: own}))
	s.wg.Wait()
	return s, client
}

func nextStream(t *testing.T, c *streamingClient) chan network.Conversation {
	t.Helper()
	select {
	case ch := <-c.opened:
		return ch
	case <-time.After(time.Second):
		t.Fatal("stream was not opened")
		return nil
	}
}

func TestStream_AppendsNewConversations(t *testing.T) {
	s, client := connectStreaming(t)
	stream := nextStream(t, client)

	stream <- &fakeConversation{info: convInfo(peerX, "other-app/x"), messages: rawMessages(peerX, 1)}
	stream <- &fakeConversation{info: convInfo(own, testNamespace+"self"), messages: rawMessages(own, 1)}
	stream <- &fakeConversation{info: convInfo(peerY, testNamespace+"y"), messages: rawMessages(peerY, 2)}

	require.Eventually(t, func() bool {
		_, ok := s.Snapshot().ConversationMessages[peerY]
		return ok
	}, time.Second, 5*time.Millisecond)

	st := s.Snapshot()
	assert.Len(t, st.ConversationMessages, 1)
	assert.Len(t, st.ConversationMessages[peerY], 2)
}

func TestStream_EmptyConversationAppearsOnMessageEvent(t *testing.T) {
	cfg := testSessionConfig()
	cfg.StreamRetryInterval = time.Hour
	s, client := connectStreamingWith(t, cfg)
	stream := nextStream(t, client)
	live := &liveConversation{info: convInfo(peerX, testNamespace+"live")}

	stream <- live
	// The second send returns once the first event was handled.
	stream <- &fakeConversation{info: convInfo(peerY, "other-app/y")}
	assert.NotContains(t, s.Snapshot().ConversationMessages, peerX)

	live.post(rawMessages(peerX, 2)...)
	stream <- live

	require.Eventually(t, func() bool {
		return len(s.Snapshot().ConversationMessages[peerX]) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestStream_PendingConversationIsRefetched(t *testing.T) {
	s, client := connectStreaming(t)
	stream := nextStream(t, client)
	live := &liveConversation{info: convInfo(peerZ, testNamespace+"quiet")}

	stream <- live
	live.post(rawMessages(peerZ, 1)...)

	require.Eventually(t, func() bool {
		_, ok := s.Snapshot().ConversationMessages[peerZ]
		return ok
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, s.Snapshot().Conversations, peerZ)
}

func TestStream_NewMessagesUpdateSyncedConversation(t *testing.T) {
	s, client := connectStreaming(t)
	stream := nextStream(t, client)
	live := &liveConversation{info: convInfo(peerY, testNamespace+"y")}
	live.post(rawMessages(peerY, 1)...)

	stream <- live
	require.Eventually(t, func() bool {
		return len(s.Snapshot().ConversationMessages[peerY]) == 1
	}, time.Second, 5*time.Millisecond)

	live.post(models.RawMessage{ID: "late", SenderAddress: peerY, Content: "again", SentAt: baseTime.Add(time.Hour)})
	stream <- live

	require.Eventually(t, func() bool {
		return len(s.Snapshot().ConversationMessages[peerY]) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestStream_ReopensAfterDrop(t *testing.T) {
	s, client := connectStreaming(t)

	close(nextStream(t, client))
	stream := nextStream(t, client)
	stream <- &fakeConversation{info: convInfo(peerZ, testNamespace+"z"), messages: rawMessages(peerZ, 1)}

	require.Eventually(t, func() bool {
		_, ok := s.Snapshot().ConversationMessages[peerZ]
		return ok
	}, time.Second, 5*time.Millisecond)
}

func TestStream_StopsOnDisconnect(t *testing.T) {
	s, client := connectStreaming(t)
	stream := nextStream(t, client)

	s.Disconnect()

	select {
	case stream <- &fakeConversation{info: convInfo(peerX, testNamespace+"x"), messages: rawMessages(peerX, 1)}:
		t.Fatal("stream is still consumed after disconnect")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Empty(t, s.Snapshot().ConversationMessages)

	select {
	case <-client.opened:
		t.Fatal("stream reopened after disconnect")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStream_ClientWithoutStreamingIsIgnored(t *testing.T) {
	j := newStreamSubscriber(nil, testNamespace, 0, logger.Nop())

	assert.NotPanics(t, func() {
		j.Start(context.Background(), 1, &fakeClient{address: own})
		j.Stop()
	})
	assert.Equal(t, 5*time.Second, j.retry)
}
