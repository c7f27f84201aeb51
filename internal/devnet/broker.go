package devnet

import (
	"sync"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/models"
)

const subscriberBuffer = 16

type subscriberKey struct {
	env     models.Environment
	address models.Address
}

// Broker fans stream events out to the websocket subscribers of an address.
// A subscriber that falls behind by more than its buffer loses events.
type Broker struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[subscriberKey]map[uint64]chan network.StreamEvent

	logger *logger.Logger
}

func NewBroker(log *logger.Logger) *Broker {
	return &Broker{
		subs:   make(map[subscriberKey]map[uint64]chan network.StreamEvent),
		logger: log,
	}
}

// Subscribe registers a subscriber for address on env. The returned cancel
// function unregisters it and closes the channel; it is safe to call more
// than once.
func (b *Broker) Subscribe(env models.Environment, address models.Address) (<-chan network.StreamEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := subscriberKey{env: env, address: address}
	if b.subs[key] == nil {
		b.subs[key] = make(map[uint64]chan network.StreamEvent)
	}
	b.nextID++
	id := b.nextID
	ch := make(chan network.StreamEvent, subscriberBuffer)
	b.subs[key][id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[key], id)
			if len(b.subs[key]) == 0 {
				delete(b.subs, key)
			}
			close(ch)
		})
	}
}

// Publish delivers event to every subscriber of address without blocking.
func (b *Broker) Publish(env models.Environment, address models.Address, event network.StreamEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs[subscriberKey{env: env, address: address}] {
		select {
		case ch <- event:
		default:
			b.logger.Warn().Str("address", address.String()).Msg("stream subscriber lagging, event dropped")
		}
	}
}

// Subscribers returns the number of live subscriptions of address.
func (b *Broker) Subscribers(env models.Environment, address models.Address) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[subscriberKey{env: env, address: address}])
}
