package session

import (
	"sync"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/metrics"
)

type envelope struct {
	action   action
	accepted chan bool
}

// Store owns the session [State]. A single goroutine applies every action,
// readers get deep copies.
type Store struct {
	actions chan envelope
	quit    chan struct{}
	stopped chan struct{}
	once    sync.Once

	// state is touched only by the run goroutine.
	state State

	mu        sync.RWMutex
	published State
	subs      map[int]chan State
	nextSub   int
	closed    bool

	metrics *metrics.Session
	log     *logger.Logger
}

// NewStore starts the store goroutine. Close stops it.
func NewStore(m *metrics.Session, log *logger.Logger) *Store {
	s := &Store{
		actions:   make(chan envelope),
		quit:      make(chan struct{}),
		stopped:   make(chan struct{}),
		state:     newState(),
		published: newState(),
		subs:      make(map[int]chan State),
		metrics:   m,
		log:       log.WithComponent("store"),
	}
	go s.run()
	return s
}

func (s *Store) run() {
	defer close(s.stopped)

	for {
		select {
		case <-s.quit:
			return
		case env := <-s.actions:
			env.accepted <- s.apply(env.action)
		}
	}
}

func (s *Store) apply(a action) bool {
	if reason := reduce(&s.state, a); reason != "" {
		s.log.Debug().
			Str("action", a.name()).
			Str("reason", reason).
			Uint64("generation", s.state.Generation).
			Msg("action rejected")
		if reason == "stale generation" {
			s.metrics.ObserveStale()
		}
		return false
	}

	s.publish(s.state.Clone())
	return true
}

func (s *Store) publish(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.published = st
	for _, ch := range s.subs {
		offer(ch, st.Clone())
	}
}

// offer replaces whatever value ch still holds with st.
func offer(ch chan State, st State) {
	select {
	case ch <- st:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- st:
	default:
	}
}

// Dispatch applies a and blocks until the store goroutine has handled it.
// It reports whether the action was accepted.
func (s *Store) Dispatch(a action) (bool, error) {
	accepted := make(chan bool, 1)
	select {
	case s.actions <- envelope{action: a, accepted: accepted}:
	case <-s.quit:
		return false, ErrStoreClosed
	}

	select {
	case ok := <-accepted:
		return ok, nil
	case <-s.stopped:
		return false, ErrStoreClosed
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.published.Clone()
}

// Subscribe returns a channel that always holds the most recent state. A
// slow reader skips intermediate states and never blocks the store. The
// returned function unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.published.Clone()
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(ch)
			}
		})
	}
}

// Close stops the store goroutine and closes every subscription. Dispatch
// returns ErrStoreClosed afterwards.
func (s *Store) Close() {
	s.once.Do(func() {
		close(s.quit)
		<-s.stopped

		s.mu.Lock()
		defer s.mu.Unlock()
		s.closed = true
		for id, ch := range s.subs {
			delete(s.subs, id)
			close(ch)
		}
	})
}
