package session

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/metrics"
	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/internal/wallet"
	"github.com/MKhiriev/go-indie-chat/models"
)

// Session is the messaging session consumed by the presentation layer. It
// wires the store, lifecycle, discovery, sync and stream components.
type Session struct {
	store     *Store
	lifecycle *LifecycleManager
	discovery *DiscoveryEngine
	sync      *SyncEngine
	stream    *streamSubscriber
	namespace string
	log       *logger.Logger

	wg sync.WaitGroup
}

// New creates a session on nw for env. m may be nil.
func New(nw network.Network, env models.Environment, cfg config.ClientSession, m *metrics.Session, log *logger.Logger) *Session {
	store := NewStore(m, log)
	engine := NewSyncEngine(store, cfg.FetchConcurrency, m, log)

	s := &Session{
		store:     store,
		discovery: NewDiscoveryEngine(store, cfg.NamespacePrefix, m, log),
		sync:      engine,
		stream:    newStreamSubscriber(engine, cfg.NamespacePrefix, cfg.StreamRetryInterval, log),
		namespace: cfg.NamespacePrefix,
		log:       log.WithComponent("session"),
	}
	s.lifecycle = NewLifecycleManager(store, nw, env, s.onReady, s.stream.Stop, log)
	return s
}

// onReady runs discovery and then message sync in the background and starts
// following new conversations.
func (s *Session) onReady(ctx context.Context, gen uint64, client network.Client) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		conversations, ok := s.discovery.Run(ctx, gen, client)
		if !ok {
			return
		}
		s.sync.Run(ctx, gen, client.Address(), conversations)
	}()

	s.stream.Start(ctx, gen, client)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	return s.store.Snapshot()
}

// Subscribe delivers the latest state on every change. Call the returned
// function to stop.
func (s *Session) Subscribe() (<-chan State, func()) {
	return s.store.Subscribe()
}

// SetSigner changes the active wallet signer and checks whether it already
// has a messaging identity.
func (s *Session) SetSigner(ctx context.Context, signer wallet.Signer) {
	s.lifecycle.SetSigner(ctx, signer)
}

// InitClient authenticates signer and starts a session. See
// [LifecycleManager.InitClient].
func (s *Session) InitClient(ctx context.Context, signer wallet.Signer) error {
	return s.lifecycle.InitClient(ctx, signer)
}

// SelectSigner makes signer the active one without network calls. See
// [LifecycleManager.SelectSigner].
func (s *Session) SelectSigner(signer wallet.Signer) bool {
	return s.lifecycle.SelectSigner(signer)
}

// CheckExistence runs the identity existence check for the active signer.
func (s *Session) CheckExistence(ctx context.Context) error {
	return s.lifecycle.CheckExistence(ctx, s.lifecycle.Signer())
}

// Connect is InitClient with the active signer.
func (s *Session) Connect(ctx context.Context) error {
	return s.lifecycle.InitClient(ctx, s.lifecycle.Signer())
}

// Disconnect ends the session and clears all session data. A signer selected
// while connected is checked in the background afterwards.
func (s *Session) Disconnect() {
	if !s.lifecycle.Disconnect() {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_ = s.CheckExistence(context.Background())
	}()
}

// AppendConversation syncs a conversation reported by an external
// collaborator into the current session. Conversations outside the
// namespace are ignored; those without messages stay absent.
func (s *Session) AppendConversation(ctx context.Context, conv network.Conversation) error {
	st := s.store.Snapshot()
	if st.Client == nil {
		return ErrNoClient
	}
	if len(filterNamespace([]network.Conversation{conv}, s.namespace)) == 0 {
		return nil
	}
	return s.sync.SyncOne(ctx, st.Generation, st.Client.Address(), conv)
}

// Close disconnects, waits for background work and stops the store.
func (s *Session) Close() {
	s.lifecycle.Disconnect()
	s.wg.Wait()
	s.store.Close()
}
