package session

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/metrics"
	"github.com/MKhiriev/go-indie-chat/internal/network"
)

// DiscoveryEngine lists the conversations of the application namespace
// once a client is ready.
type DiscoveryEngine struct {
	store     *Store
	namespace string
	metrics   *metrics.Session
	log       *logger.Logger
}

// NewDiscoveryEngine creates an engine keeping conversations whose
// identifier starts with namespace.
func NewDiscoveryEngine(store *Store, namespace string, m *metrics.Session, log *logger.Logger) *DiscoveryEngine {
	return &DiscoveryEngine{
		store:     store,
		namespace: namespace,
		metrics:   m,
		log:       log.WithComponent("discovery"),
	}
}

// Run lists the conversations of client for generation gen and returns the
// ones of the namespace, in network order. A failed listing is logged and
// yields an empty result. ok is false when the session changed meanwhile;
// the result must then be dropped.
func (d *DiscoveryEngine) Run(ctx context.Context, gen uint64, client network.Client) (conversations []network.Conversation, ok bool) {
	log := d.log.With().Uint64("generation", gen).Logger()

	accepted, err := d.store.Dispatch(discoveryStarted{gated: gated{gen}})
	if err != nil || !accepted {
		return nil, false
	}

	conversations, err = d.list(ctx, client)
	d.metrics.ObserveDiscovery(err)
	if err != nil {
		log.Err(err).Msg("error discovering conversations")
		conversations = nil
	}

	accepted, dispatchErr := d.store.Dispatch(discoveryFinished{gated: gated{gen}, found: len(conversations), err: err})
	if dispatchErr != nil || !accepted {
		log.Debug().Msg("dropping discovery result of ended session")
		return nil, false
	}

	log.Info().Int("conversations", len(conversations)).Msg("conversations discovered")
	return conversations, true
}

func (d *DiscoveryEngine) list(ctx context.Context, client network.Client) ([]network.Conversation, error) {
	all, err := client.ListConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscovery, err)
	}
	return filterNamespace(all, d.namespace), nil
}

// filterNamespace keeps the conversations whose identifier starts with
// prefix, preserving order.
func filterNamespace(conversations []network.Conversation, prefix string) []network.Conversation {
	out := make([]network.Conversation, 0, len(conversations))
	for _, c := range conversations {
		if c != nil && c.Info().HasNamespace(prefix) {
			out = append(out, c)
		}
	}
	return out
}
