package session

import (
	"slices"

	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/models"
)

// action is a state delta applied by the store goroutine.
type action interface {
	name() string
}

// gated marks actions produced under a session generation. The store
// rejects them once the generation has moved on.
type gated struct {
	gen uint64
}

func (g gated) generation() uint64 { return g.gen }

type generational interface {
	generation() uint64
}

type signerChanged struct {
	address models.Address
}

type existenceChecked struct {
	gated
	address models.Address
	exists  bool
}

type clientReady struct {
	gated
	client network.Client
}

type authFailed struct {
	gated
	err error
}

type discoveryStarted struct {
	gated
}

type discoveryFinished struct {
	gated
	found int
	err   error
}

type conversationSynced struct {
	gated
	conversation models.Conversation
	messages     []models.ChatMessage
}

type messagesSettled struct {
	gated
}

type sessionReset struct{}

func (signerChanged) name() string      { return "signer-changed" }
func (existenceChecked) name() string   { return "existence-checked" }
func (clientReady) name() string        { return "client-ready" }
func (authFailed) name() string         { return "auth-failed" }
func (discoveryStarted) name() string   { return "discovery-started" }
func (discoveryFinished) name() string  { return "discovery-finished" }
func (conversationSynced) name() string { return "conversation-synced" }
func (messagesSettled) name() string    { return "messages-settled" }
func (sessionReset) name() string       { return "session-reset" }

// reduce applies a to s in place. It returns a non-empty reason when the
// action was rejected, in which case s is unchanged.
func reduce(s *State, a action) string {
	if g, ok := a.(generational); ok && g.generation() != s.Generation {
		return "stale generation"
	}

	switch a := a.(type) {
	case signerChanged:
		if s.Client != nil {
			return "client already present"
		}
		s.Address = a.address
		s.UserExists = false
		s.Phase = PhaseKeyCheckPending

	case existenceChecked:
		if !a.address.Equal(s.Address) {
			return "signer changed"
		}
		if s.Client != nil {
			return "client already present"
		}
		s.UserExists = a.exists
		s.Phase = PhaseNotProvisioned
		if a.exists {
			s.Phase = PhaseProvisioned
		}

	case clientReady:
		if s.Client != nil {
			return "client already present"
		}
		s.Client = a.client
		s.Address = a.client.Address()
		s.UserExists = true
		s.Phase = PhaseClientReady
		s.LastError = ""
		s.Generation++

	case authFailed:
		s.LastError = a.err.Error()

	case discoveryStarted:
		if s.Client == nil {
			return "no client"
		}
		s.LoadingConversations = true
		s.LoadingMessages = true

	case discoveryFinished:
		s.LoadingConversations = false
		if a.err != nil {
			s.LastError = a.err.Error()
		}

	case conversationSynced:
		peer := models.NewAddress(a.conversation.PeerAddress.String())
		if s.Client == nil {
			return "no client"
		}
		if peer.Equal(s.Client.Address()) {
			return "own address"
		}
		if len(a.messages) == 0 {
			return "no messages"
		}
		msgs := slices.Clone(a.messages)
		slices.SortStableFunc(msgs, func(x, y models.ChatMessage) int {
			return x.SentAt.Compare(y.SentAt)
		})
		s.Conversations[peer] = a.conversation.Clone()
		s.ConversationMessages[peer] = msgs

	case messagesSettled:
		s.LoadingMessages = false

	case sessionReset:
		address := s.Address
		gen := s.Generation
		*s = newState()
		s.Address = address
		s.Generation = gen + 1
		s.Phase = PhaseDisconnected
	}

	return ""
}
