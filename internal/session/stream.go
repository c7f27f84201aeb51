package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/network"
)

// maxPending bounds the streamed conversations kept for a re-fetch while
// they have no messages.
const maxPending = 256

type streamSubscriber struct {
	sync      *SyncEngine
	namespace string
	retry     time.Duration
	log       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// pending holds streamed conversations without messages yet, by topic.
	// Only the subscription goroutine touches it.
	pending map[string]network.Conversation
}

func newStreamSubscriber(engine *SyncEngine, namespace string, retry time.Duration, log *logger.Logger) *streamSubscriber {
	if retry <= 0 {
		retry = 5 * time.Second
	}
	return &streamSubscriber{
		sync:      engine,
		namespace: namespace,
		retry:     retry,
		log:       log.WithComponent("stream"),
	}
}

// Start stops any running subscription, then follows new conversations of
// client for generation gen until ctx is done or Stop is called. Clients
// that cannot stream are left alone. A dropped stream is reopened after the
// retry interval.
func (j *streamSubscriber) Start(ctx context.Context, gen uint64, client network.Client) {
	streamer, ok := client.(network.ConversationStreamer)
	if !ok {
		j.log.Debug().Msg("client does not stream conversations")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.pending = make(map[string]network.Conversation)
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		log := j.log.With().Uint64("generation", gen).Logger()

		for {
			ch, err := streamer.StreamConversations(jobCtx)
			if err != nil {
				log.Err(err).Msg("error opening conversation stream")
			} else if !j.consume(jobCtx, gen, client, ch) {
				return
			}
			log.Warn().Dur("retry", j.retry).Msg("conversation stream closed")

			t := time.NewTimer(j.retry)
			select {
			case <-jobCtx.Done():
				t.Stop()
				return
			case <-t.C:
			}
		}
	}()
}

// consume handles conversations from ch until it closes, re-fetching the
// pending ones every retry interval. It returns false when ctx ended first.
func (j *streamSubscriber) consume(ctx context.Context, gen uint64, client network.Client, ch <-chan network.Conversation) bool {
	ticker := time.NewTicker(j.retry)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case conv, ok := <-ch:
			if !ok {
				return ctx.Err() == nil
			}
			j.handle(ctx, gen, client, conv)
		case <-ticker.C:
			j.retryPending(ctx, gen, client)
		}
	}
}

// handle syncs a streamed conversation of the namespace. One that cannot be
// committed yet stays pending until a later event or tick succeeds.
func (j *streamSubscriber) handle(ctx context.Context, gen uint64, client network.Client, conv network.Conversation) {
	if len(filterNamespace([]network.Conversation{conv}, j.namespace)) == 0 {
		return
	}
	info := conv.Info()
	own := client.Address()
	if info.PeerAddress.Equal(own) {
		return
	}

	synced, _ := j.sync.syncConversation(ctx, gen, own, conv)
	switch {
	case synced:
		delete(j.pending, info.Topic)
	case ctx.Err() != nil:
	default:
		if _, ok := j.pending[info.Topic]; !ok && len(j.pending) >= maxPending {
			j.log.Warn().Str("topic", info.Topic).Msg("too many pending conversations, dropping")
			return
		}
		j.pending[info.Topic] = conv
	}
}

func (j *streamSubscriber) retryPending(ctx context.Context, gen uint64, client network.Client) {
	for _, conv := range j.pending {
		if ctx.Err() != nil {
			return
		}
		j.handle(ctx, gen, client, conv)
	}
}

// Stop cancels the subscription and waits for its goroutine to exit. Safe
// to call when nothing is running.
func (j *streamSubscriber) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
