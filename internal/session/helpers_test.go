package session

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/mock"
	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/internal/wallet"
	"github.com/MKhiriev/go-indie-chat/models"
)

const testNamespace = "indie-talent/"

var (
	own   = models.NewAddress("0x1111111111111111111111111111111111111111")
	peerX = models.NewAddress("0x2222222222222222222222222222222222222222")
	peerY = models.NewAddress("0x3333333333333333333333333333333333333333")
	peerZ = models.NewAddress("0x4444444444444444444444444444444444444444")

	baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func testSessionConfig() config.ClientSession {
	return config.ClientSession{
		NamespacePrefix:     testNamespace,
		StreamRetryInterval: 10 * time.Millisecond,
	}
}

// rawMessages builds n messages alternating between peer and own, one
// minute apart.
func rawMessages(peer models.Address, n int) []models.RawMessage {
	out := make([]models.RawMessage, 0, n)
	for i := range n {
		sender := peer
		if i%2 == 1 {
			sender = own
		}
		out = append(out, models.RawMessage{
			ID:            fmt.Sprintf("%s-%d", peer.Short(), i),
			SenderAddress: sender,
			Content:       fmt.Sprintf("message %d", i),
			SentAt:        baseTime.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func convInfo(peer models.Address, id string) models.Conversation {
	return models.Conversation{
		PeerAddress:    peer,
		ConversationID: id,
		Topic:          "/indie-chat/1/" + peer.String() + "/" + id + "/proto",
		CreatedAt:      baseTime,
	}
}

// ── gomock fixture ───────────────────────────────────────────────────────────

type fixture struct {
	ctrl    *gomock.Controller
	network *mock.MockNetwork
	client  *mock.MockClient
	signer  *mock.MockSigner
	session *Session
}

func newFixture(t *testing.T, cfg config.ClientSession) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctrl:    ctrl,
		network: mock.NewMockNetwork(ctrl),
		client:  mock.NewMockClient(ctrl),
		signer:  mock.NewMockSigner(ctrl),
	}
	f.client.EXPECT().Address().Return(own).AnyTimes()
	f.signer.EXPECT().Address().Return(own).AnyTimes()

	f.session = New(f.network, models.EnvironmentDev, cfg, nil, logger.Nop())
	t.Cleanup(f.session.Close)
	return f
}

func (f *fixture) expectAuth() {
	keys := models.IdentityKeys{Address: own, Environment: models.EnvironmentDev}
	f.network.EXPECT().DeriveKeys(gomock.Any(), f.signer, models.EnvironmentDev).Return(keys, nil)
	f.network.EXPECT().Create(gomock.Any(), gomock.Any(), models.EnvironmentDev).Return(f.client, nil)
}

func (f *fixture) conversation(info models.Conversation, msgs []models.RawMessage, err error) *mock.MockConversation {
	c := mock.NewMockConversation(f.ctrl)
	c.EXPECT().Info().Return(info).AnyTimes()
	if !info.HasNamespace(testNamespace) || info.PeerAddress.Equal(own) {
		return c
	}
	c.EXPECT().Messages(gomock.Any()).Return(msgs, err)
	return c
}

// connect initializes the client and waits for discovery and sync.
func (f *fixture) connect(t *testing.T) State {
	t.Helper()
	require.NoError(t, f.session.InitClient(context.Background(), f.signer))
	f.session.wg.Wait()
	return f.session.Snapshot()
}

// ── hand-written fakes ───────────────────────────────────────────────────────

type fakeConversation struct {
	info     models.Conversation
	messages []models.RawMessage
	err      error
}

func (c *fakeConversation) Info() models.Conversation { return c.info }

func (c *fakeConversation) Messages(context.Context) ([]models.RawMessage, error) {
	return c.messages, c.err
}

// liveConversation is a conversation whose history grows while a session
// follows it.
type liveConversation struct {
	info models.Conversation

	mu       sync.Mutex
	messages []models.RawMessage
}

func (c *liveConversation) Info() models.Conversation { return c.info }

func (c *liveConversation) Messages(context.Context) ([]models.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.messages), nil
}

func (c *liveConversation) post(msgs ...models.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msgs...)
}

type fakeClient struct {
	address       models.Address
	conversations []network.Conversation
}

func (c *fakeClient) Address() models.Address { return c.address }

func (c *fakeClient) ListConversations(context.Context) ([]network.Conversation, error) {
	return c.conversations, nil
}

// streamingClient hands out one channel per StreamConversations call.
type streamingClient struct {
	fakeClient

	mu      sync.Mutex
	streams []chan network.Conversation
	opened  chan chan network.Conversation
}

func newStreamingClient() *streamingClient {
	return &streamingClient{
		fakeClient: fakeClient{address: own},
		opened:     make(chan chan network.Conversation, 8),
	}
}

func (c *streamingClient) StreamConversations(ctx context.Context) (<-chan network.Conversation, error) {
	ch := make(chan network.Conversation)
	c.mu.Lock()
	c.streams = append(c.streams, ch)
	c.mu.Unlock()
	c.opened <- ch
	return ch, nil
}

type fakeNetwork struct {
	client network.Client
}

func (n *fakeNetwork) DeriveKeys(_ context.Context, signer wallet.Signer, env models.Environment) (models.IdentityKeys, error) {
	return models.IdentityKeys{Address: signer.Address(), Environment: env}, nil
}

func (n *fakeNetwork) Create(context.Context, models.IdentityKeys, models.Environment) (network.Client, error) {
	return n.client, nil
}

func (n *fakeNetwork) CanMessage(context.Context, models.Address, models.Environment) (bool, error) {
	return true, nil
}

type fakeSigner struct {
	address models.Address
}

func (s fakeSigner) Address() models.Address { return s.address }

func (s fakeSigner) SignMessage(context.Context, []byte) ([]byte, error) {
	return []byte("signature"), nil
}
