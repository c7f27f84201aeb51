package session

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/metrics"
	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/models"
)

// SyncEngine fetches the message history of discovered conversations and
// commits every non-empty one to the store.
type SyncEngine struct {
	store       *Store
	concurrency int
	metrics     *metrics.Session
	log         *logger.Logger
}

// NewSyncEngine creates an engine running at most concurrency fetches at
// once; zero or less means unbounded.
func NewSyncEngine(store *Store, concurrency int, m *metrics.Session, log *logger.Logger) *SyncEngine {
	return &SyncEngine{
		store:       store,
		concurrency: concurrency,
		metrics:     m,
		log:         log.WithComponent("sync"),
	}
}

// Run fetches every conversation whose peer is not own concurrently. Each
// result is committed as soon as it arrives; once all fetches settled the
// loading flag of the generation is cleared.
func (e *SyncEngine) Run(ctx context.Context, gen uint64, own models.Address, conversations []network.Conversation) {
	var g errgroup.Group
	if e.concurrency > 0 {
		g.SetLimit(e.concurrency)
	}

	for _, conv := range conversations {
		g.Go(func() error {
			_ = e.SyncOne(ctx, gen, own, conv)
			return nil
		})
	}
	_ = g.Wait()

	accepted, err := e.store.Dispatch(messagesSettled{gated: gated{gen}})
	if err != nil || !accepted {
		return
	}
	synced := len(e.store.Snapshot().ConversationMessages)
	e.metrics.SetSynced(synced)
	e.log.Info().Uint64("generation", gen).Int("peers", synced).Msg("messages settled")
}

// SyncOne fetches a single conversation and commits it when it has at least
// one message. Conversations with own as peer are skipped. A fetch error is
// logged, counted and returned; the peer stays absent.
func (e *SyncEngine) SyncOne(ctx context.Context, gen uint64, own models.Address, conv network.Conversation) error {
	_, err := e.syncConversation(ctx, gen, own, conv)
	return err
}

// syncConversation is SyncOne reporting whether the conversation was
// committed.
func (e *SyncEngine) syncConversation(ctx context.Context, gen uint64, own models.Address, conv network.Conversation) (bool, error) {
	info, msgs, err := e.fetch(ctx, own, conv)
	log := e.log.With().Str("peer", info.PeerAddress.String()).Uint64("generation", gen).Logger()

	switch {
	case err != nil:
		e.metrics.ObserveFetch(metrics.FetchFailed)
		log.Err(err).Msg("error syncing conversation")
		return false, err
	case info.PeerAddress.Equal(own):
		log.Debug().Msg("skipping conversation with own address")
		return false, nil
	case len(msgs) == 0:
		e.metrics.ObserveFetch(metrics.FetchEmpty)
		log.Debug().Msg("conversation has no messages")
		return false, nil
	}

	e.metrics.ObserveFetch(metrics.FetchSynced)
	accepted, err := e.store.Dispatch(conversationSynced{gated: gated{gen}, conversation: info, messages: msgs})
	if err != nil {
		return false, err
	}
	log.Debug().Int("messages", len(msgs)).Bool("accepted", accepted).Msg("conversation synced")
	return accepted, nil
}

// fetch loads and normalizes the history of conv. A panic inside the
// network client is turned into an error.
func (e *SyncEngine) fetch(ctx context.Context, own models.Address, conv network.Conversation) (info models.Conversation, msgs []models.ChatMessage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrSync, r)
		}
	}()

	info = conv.Info()
	if info.PeerAddress.Equal(own) {
		return info, nil, nil
	}

	raw, err := conv.Messages(ctx)
	if err != nil {
		return info, nil, fmt.Errorf("%w: %v", ErrSync, err)
	}

	msgs = make([]models.ChatMessage, 0, len(raw))
	for _, r := range raw {
		msg, err := models.NewChatMessage(r, own, info.PeerAddress)
		if err != nil {
			e.log.Warn().Err(err).Str("peer", info.PeerAddress.String()).Str("message", r.ID).Msg("skipping invalid message")
			continue
		}
		msgs = append(msgs, msg)
	}
	return info, msgs, nil
}
