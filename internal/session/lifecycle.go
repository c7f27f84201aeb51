package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/internal/wallet"
	"github.com/MKhiriev/go-indie-chat/models"
)

// ReadyFunc is called after a new client was accepted by the store. ctx
// lives until the session is disconnected; gen is the generation of the new
// session.
type ReadyFunc func(ctx context.Context, gen uint64, client network.Client)

// LifecycleManager moves the session through its phases: identity check,
// client creation and disconnect.
type LifecycleManager struct {
	store   *Store
	network network.Network
	env     models.Environment
	log     *logger.Logger

	onReady ReadyFunc
	onReset func()

	flight singleflight.Group

	mu     sync.Mutex
	signer wallet.Signer
	cancel context.CancelFunc
}

// NewLifecycleManager creates a manager for env. onReady and onReset may be
// nil.
func NewLifecycleManager(store *Store, nw network.Network, env models.Environment, onReady ReadyFunc, onReset func(), log *logger.Logger) *LifecycleManager {
	return &LifecycleManager{
		store:   store,
		network: nw,
		env:     env,
		onReady: onReady,
		onReset: onReset,
		log:     log.WithComponent("lifecycle"),
	}
}

// Signer returns the active signer, nil when none was set.
func (m *LifecycleManager) Signer() wallet.Signer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signer
}

// SetSigner makes signer the active one. A signer for a different address
// triggers an existence check. A nil signer is ignored.
func (m *LifecycleManager) SetSigner(ctx context.Context, signer wallet.Signer) {
	if m.SelectSigner(signer) {
		_ = m.CheckExistence(ctx, signer)
	}
}

// SelectSigner makes signer the active one without touching the network.
// It reports whether the state now waits for an existence check. While a
// client is live the state keeps the connected address; the new signer is
// recorded on Disconnect.
func (m *LifecycleManager) SelectSigner(signer wallet.Signer) bool {
	if signer == nil {
		m.log.Warn().Msg("ignoring nil signer")
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.signer
	m.signer = signer
	if prev != nil && prev.Address().Equal(signer.Address()) {
		return false
	}

	accepted, err := m.store.Dispatch(signerChanged{address: signer.Address()})
	if err != nil {
		m.log.Err(err).Msg("error recording signer")
		return false
	}
	if !accepted {
		m.log.Info().Str("address", signer.Address().String()).Msg("signer applies after disconnect")
	}
	return accepted
}

// CheckExistence asks the network whether the signer's wallet already has a
// messaging identity and records the answer. A failure is logged and leaves
// the phase at key-check-pending.
func (m *LifecycleManager) CheckExistence(ctx context.Context, signer wallet.Signer) error {
	if signer == nil {
		return ErrNoSigner
	}
	address := signer.Address()
	gen := m.store.Snapshot().Generation

	exists, err := m.network.CanMessage(ctx, address, m.env)
	if err != nil {
		m.log.Err(err).Str("address", address.String()).Msg("error checking identity existence")
		return err
	}

	accepted, err := m.store.Dispatch(existenceChecked{gated: gated{gen}, address: address, exists: exists})
	if err != nil {
		return err
	}
	m.log.Debug().
		Str("address", address.String()).
		Bool("exists", exists).
		Bool("accepted", accepted).
		Msg("identity existence checked")
	return nil
}

// InitClient authenticates signer and creates the messaging client. It does
// nothing when a client is already present, and concurrent calls share one
// attempt. Failures are logged, leave the state as it was and are returned;
// there is no automatic retry.
func (m *LifecycleManager) InitClient(ctx context.Context, signer wallet.Signer) error {
	if signer == nil {
		m.log.Err(ErrNoSigner).Msg("cannot initialize client")
		return ErrNoSigner
	}
	if m.store.Snapshot().Client != nil {
		return nil
	}

	_, err, shared := m.flight.Do("init-client", func() (any, error) {
		return nil, m.initClient(ctx, signer)
	})
	if shared {
		m.log.Debug().Msg("joined running client initialization")
	}
	return err
}

func (m *LifecycleManager) initClient(ctx context.Context, signer wallet.Signer) error {
	st := m.store.Snapshot()
	if st.Client != nil {
		return nil
	}
	gen := st.Generation
	log := m.log.With().Str("address", signer.Address().String()).Uint64("generation", gen).Logger()

	keys, err := m.network.DeriveKeys(ctx, signer, m.env)
	if err != nil {
		return m.fail(gen, fmt.Errorf("%w: derive keys: %w", ErrAuthentication, err))
	}
	defer keys.Zero()

	client, err := m.network.Create(ctx, keys, m.env)
	if err != nil {
		return m.fail(gen, fmt.Errorf("%w: create client: %w", ErrAuthentication, err))
	}

	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	m.mu.Lock()
	accepted, err := m.store.Dispatch(clientReady{gated: gated{gen}, client: client})
	if err != nil || !accepted {
		m.mu.Unlock()
		cancel()
		if err == nil {
			err = fmt.Errorf("%w: session changed during authentication", ErrAuthentication)
		}
		log.Warn().Err(err).Msg("discarding created client")
		return err
	}
	m.cancel = cancel
	m.mu.Unlock()

	log.Info().Msg("messaging client ready")
	if m.onReady != nil {
		m.onReady(sessionCtx, gen+1, client)
	}
	return nil
}

func (m *LifecycleManager) fail(gen uint64, err error) error {
	m.log.Err(err).Uint64("generation", gen).Msg("error initializing client")
	if _, dispatchErr := m.store.Dispatch(authFailed{gated: gated{gen}, err: err}); dispatchErr != nil {
		return errors.Join(err, dispatchErr)
	}
	return err
}

// Disconnect clears the client and all synced data, ends the session
// context and starts a new generation, so results of work started before
// are discarded. A signer selected while connected is recorded then; the
// result reports whether it still needs an existence check.
func (m *LifecycleManager) Disconnect() bool {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	_, err := m.store.Dispatch(sessionReset{})
	recheck := false
	if err == nil && m.signer != nil && !m.signer.Address().Equal(m.store.Snapshot().Address) {
		recheck, err = m.store.Dispatch(signerChanged{address: m.signer.Address()})
	}
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if m.onReset != nil {
		m.onReset()
	}

	if err != nil {
		m.log.Err(err).Msg("error resetting session")
		return false
	}
	m.log.Info().Msg("session disconnected")
	return recheck
}
