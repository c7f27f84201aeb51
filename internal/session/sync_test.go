package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/mock"
	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/models"
)

// ── Scenarios ────────────────────────────────────────────────────────────────

func TestScenarioA_ClientReady(t *testing.T) {
	f := newFixture(t, testSessionConfig())
	f.expectAuth()
	f.client.EXPECT().ListConversations(gomock.Any()).Return(nil, nil)

	st := f.connect(t)

	assert.NotNil(t, st.Client)
	assert.True(t, st.UserExists)
}

func TestScenarioB_ZeroMessagePeerOmitted(t *testing.T) {
	// Arrange
	f := newFixture(t, testSessionConfig())
	f.expectAuth()
	f.client.EXPECT().ListConversations(gomock.Any()).Return([]network.Conversation{
		f.conversation(convInfo(peerX, testNamespace+"x"), rawMessages(peerX, 3), nil),
		f.conversation(convInfo(peerY, testNamespace+"y"), nil, nil),
	}, nil)

	// Act
	st := f.connect(t)

	// Assert
	require.Len(t, st.ConversationMessages, 1)
	msgs := st.ConversationMessages[peerX]
	require.Len(t, msgs, 3)
	for i := 1; i < len(msgs); i++ {
		assert.True(t, msgs[i-1].SentAt.Before(msgs[i].SentAt))
	}
	assert.Equal(t, models.DirectionReceived, msgs[0].Direction(own))
	assert.Equal(t, models.DirectionSent, msgs[1].Direction(own))
	assert.Equal(t, peerX, msgs[1].RecipientAddress)

	assert.Contains(t, st.Conversations, peerX)
	assert.NotContains(t, st.Conversations, peerY)
	assert.NotContains(t, st.ConversationMessages, peerY)
	assert.False(t, st.LoadingMessages)
}

func TestScenarioC_DiscoveryFails(t *testing.T) {
	f := newFixture(t, testSessionConfig())
	f.expectAuth()
	f.client.EXPECT().ListConversations(gomock.Any()).Return(nil, errors.New("listing failed"))

	var st State
	require.NotPanics(t, func() { st = f.connect(t) })

	assert.False(t, st.LoadingConversations)
	assert.False(t, st.LoadingMessages)
	assert.Empty(t, st.Conversations)
	assert.Empty(t, st.ConversationMessages)
	assert.Contains(t, st.LastError, ErrDiscovery.Error())
	assert.NotNil(t, st.Client)
}

func TestScenarioD_OneFetchFails(t *testing.T) {
	f := newFixture(t, testSessionConfig())
	f.expectAuth()
	f.client.EXPECT().ListConversations(gomock.Any()).Return([]network.Conversation{
		f.conversation(convInfo(peerX, testNamespace+"x"), nil, errors.New("fetch failed")),
		f.conversation(convInfo(peerY, testNamespace+"y"), rawMessages(peerY, 4), nil),
	}, nil)

	st := f.connect(t)

	assert.NotContains(t, st.ConversationMessages, peerX)
	assert.NotContains(t, st.Conversations, peerX)
	require.Len(t, st.ConversationMessages[peerY], 4)
	msgs := st.ConversationMessages[peerY]
	for i := 1; i < len(msgs); i++ {
		assert.False(t, msgs[i].SentAt.Before(msgs[i-1].SentAt))
	}
	assert.False(t, st.LoadingMessages)
}

func TestScenarioE_LateDiscoveryAfterDisconnectIsRejected(t *testing.T) {
	// Arrange
	f := newFixture(t, testSessionConfig())
	f.expectAuth()
	started := make(chan struct{})
	release := make(chan struct{})
	late := mock.NewMockConversation(f.ctrl)
	late.EXPECT().Info().Return(convInfo(peerZ, testNamespace+"late")).AnyTimes()
	late.EXPECT().Messages(gomock.Any()).Times(0)

	f.client.EXPECT().ListConversations(gomock.Any()).
		DoAndReturn(func(context.Context) ([]network.Conversation, error) {
			close(started)
			<-release
			return []network.Conversation{late}, nil
		})

	require.NoError(t, f.session.InitClient(context.Background(), f.signer))
	<-started

	// Act
	f.session.Disconnect()
	close(release)
	f.session.wg.Wait()

	// Assert
	st := f.session.Snapshot()
	assert.Nil(t, st.Client)
	assert.Empty(t, st.Conversations)
	assert.Empty(t, st.ConversationMessages)
	assert.False(t, st.LoadingConversations)
	assert.Equal(t, PhaseDisconnected, st.Phase)
}

// ── Filters ──────────────────────────────────────────────────────────────────

func TestSync_SkipsOwnAddressAndForeignNamespaces(t *testing.T) {
	f := newFixture(t, testSessionConfig())
	f.expectAuth()
	f.client.EXPECT().ListConversations(gomock.Any()).Return([]network.Conversation{
		f.conversation(convInfo(own, testNamespace+"self"), nil, nil),
		f.conversation(convInfo(peerX, "other-app/x"), nil, nil),
		f.conversation(convInfo(peerY, ""), nil, nil),
		f.conversation(convInfo(peerZ, testNamespace+"z"), rawMessages(peerZ, 1), nil),
	}, nil)

	st := f.connect(t)

	assert.Len(t, st.ConversationMessages, 1)
	assert.Contains(t, st.ConversationMessages, peerZ)
	assert.NotContains(t, st.ConversationMessages, own)
}

func TestSync_SkipsInvalidMessages(t *testing.T) {
	f := newFixture(t, testSessionConfig())
	f.expectAuth()
	msgs := rawMessages(peerX, 2)
	msgs = append(msgs, models.RawMessage{ID: "", SenderAddress: peerX, SentAt: baseTime})
	f.client.EXPECT().ListConversations(gomock.Any()).Return([]network.Conversation{
		f.conversation(convInfo(peerX, testNamespace+"x"), msgs, nil),
	}, nil)

	st := f.connect(t)

	assert.Len(t, st.ConversationMessages[peerX], 2)
}

func TestSync_RecoversFromPanickingFetch(t *testing.T) {
	f := newFixture(t, testSessionConfig())
	f.expectAuth()

	boom := mock.NewMockConversation(f.ctrl)
	boom.EXPECT().Info().Return(convInfo(peerX, testNamespace+"x")).AnyTimes()
	boom.EXPECT().Messages(gomock.Any()).DoAndReturn(func(context.Context) ([]models.RawMessage, error) {
		panic("decoder exploded")
	})
	f.client.EXPECT().ListConversations(gomock.Any()).Return([]network.Conversation{
		boom,
		f.conversation(convInfo(peerY, testNamespace+"y"), rawMessages(peerY, 1), nil),
	}, nil)

	st := f.connect(t)

	assert.NotContains(t, st.ConversationMessages, peerX)
	assert.Contains(t, st.ConversationMessages, peerY)
	assert.False(t, st.LoadingMessages)
}

func TestSync_LoadingMessagesClearsAfterAllFetches(t *testing.T) {
	f := newFixture(t, testSessionConfig())
	f.expectAuth()

	release := make(chan struct{})
	slow := mock.NewMockConversation(f.ctrl)
	slow.EXPECT().Info().Return(convInfo(peerX, testNamespace+"x")).AnyTimes()
	slow.EXPECT().Messages(gomock.Any()).DoAndReturn(func(context.Context) ([]models.RawMessage, error) {
		<-release
		return rawMessages(peerX, 1), nil
	})
	f.client.EXPECT().ListConversations(gomock.Any()).Return([]network.Conversation{
		slow,
		f.conversation(convInfo(peerY, testNamespace+"y"), rawMessages(peerY, 2), nil),
	}, nil)

	require.NoError(t, f.session.InitClient(context.Background(), f.signer))

	require.Eventually(t, func() bool {
		_, ok := f.session.Snapshot().ConversationMessages[peerY]
		return ok
	}, time.Second, 5*time.Millisecond)
	assert.True(t, f.session.Snapshot().LoadingMessages)

	close(release)
	f.session.wg.Wait()

	st := f.session.Snapshot()
	assert.False(t, st.LoadingMessages)
	assert.Len(t, st.ConversationMessages, 2)
}

func TestSync_RespectsConcurrencyLimit(t *testing.T) {
	cfg := testSessionConfig()
	cfg.FetchConcurrency = 2
	f := newFixture(t, cfg)
	f.expectAuth()

	var running, peak atomic.Int32
	convs := make([]network.Conversation, 0, 6)
	for i, peer := range []models.Address{peerX, peerY, peerZ, peerX, peerY, peerZ} {
		c := mock.NewMockConversation(f.ctrl)
		c.EXPECT().Info().Return(convInfo(peer, testNamespace+string(rune('a'+i)))).AnyTimes()
		c.EXPECT().Messages(gomock.Any()).DoAndReturn(func(context.Context) ([]models.RawMessage, error) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return rawMessages(peer, 1), nil
		})
		convs = append(convs, c)
	}
	f.client.EXPECT().ListConversations(gomock.Any()).Return(convs, nil)

	st := f.connect(t)

	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Len(t, st.ConversationMessages, 3)
}

// ── SyncOne / AppendConversation ─────────────────────────────────────────────

func TestAppendConversation(t *testing.T) {
	f := newFixture(t, testSessionConfig())

	err := f.session.AppendConversation(context.Background(), &fakeConversation{info: convInfo(peerX, testNamespace+"x")})
	require.ErrorIs(t, err, ErrNoClient)

	f.expectAuth()
	f.client.EXPECT().ListConversations(gomock.Any()).Return(nil, nil)
	f.connect(t)

	require.NoError(t, f.session.AppendConversation(context.Background(), &fakeConversation{
		info: convInfo(peerX, "other-app/x"), messages: rawMessages(peerX, 1),
	}))
	require.NoError(t, f.session.AppendConversation(context.Background(), &fakeConversation{
		info: convInfo(peerY, testNamespace+"y"),
	}))
	require.NoError(t, f.session.AppendConversation(context.Background(), &fakeConversation{
		info: convInfo(peerZ, testNamespace+"z"), messages: rawMessages(peerZ, 2),
	}))
	err = f.session.AppendConversation(context.Background(), &fakeConversation{
		info: convInfo(peerX, testNamespace+"x"), err: errors.New("gone"),
	})
	require.ErrorIs(t, err, ErrSync)

	st := f.session.Snapshot()
	assert.Len(t, st.ConversationMessages, 1)
	assert.Len(t, st.ConversationMessages[peerZ], 2)
}

func TestSyncOne_StaleGenerationIsNotCommitted(t *testing.T) {
	store := NewStore(nil, logger.Nop())
	defer store.Close()
	engine := NewSyncEngine(store, 0, nil, logger.Nop())

	_, err := store.Dispatch(clientReady{client: &fakeClient{address: own}})
	require.NoError(t, err)

	err = engine.SyncOne(context.Background(), 0, own, &fakeConversation{
		info: convInfo(peerX, testNamespace+"x"), messages: rawMessages(peerX, 1),
	})

	require.NoError(t, err)
	assert.Empty(t, store.Snapshot().ConversationMessages)
}
