package session

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/models"
)

// Phase is the lifecycle position of the session.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseKeyCheckPending
	PhaseNotProvisioned
	PhaseProvisioned
	PhaseClientReady
	PhaseDisconnected
)

var phaseNames = map[Phase]string{
	PhaseUninitialized:   "uninitialized",
	PhaseKeyCheckPending: "key-check-pending",
	PhaseNotProvisioned:  "not-provisioned",
	PhaseProvisioned:     "provisioned",
	PhaseClientReady:     "client-ready",
	PhaseDisconnected:    "disconnected",
}

// String implements [fmt.Stringer].
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// State is the read model of a session.
//
// Conversations and ConversationMessages are keyed by the canonical peer
// address and always hold the same keys: a peer is present only once at
// least one of its messages was synced.
type State struct {
	// Client is the authenticated network client, nil while absent.
	Client network.Client
	// Address is the wallet address of the active signer.
	Address models.Address
	// UserExists reports whether the wallet has a messaging identity.
	UserExists bool

	LoadingConversations bool
	LoadingMessages      bool

	Conversations        map[models.Address]models.Conversation
	ConversationMessages map[models.Address][]models.ChatMessage

	Phase Phase
	// Generation identifies the current session. It changes on every new
	// client and on every disconnect.
	Generation uint64
	// LastError describes the most recent failure, empty once a client is
	// ready.
	LastError string
}

func newState() State {
	return State{
		Conversations:        make(map[models.Address]models.Conversation),
		ConversationMessages: make(map[models.Address][]models.ChatMessage),
	}
}

// Clone returns a deep copy of s. The client handle is shared.
func (s State) Clone() State {
	out := s
	out.Conversations = make(map[models.Address]models.Conversation, len(s.Conversations))
	for peer, conv := range s.Conversations {
		out.Conversations[peer] = conv.Clone()
	}
	out.ConversationMessages = make(map[models.Address][]models.ChatMessage, len(s.ConversationMessages))
	for peer, msgs := range s.ConversationMessages {
		out.ConversationMessages[peer] = slices.Clone(msgs)
	}
	return out
}

// Peers returns the synced peers ordered by their latest message, newest
// first.
func (s State) Peers() []models.Address {
	peers := slices.Collect(maps.Keys(s.ConversationMessages))
	slices.SortStableFunc(peers, func(a, b models.Address) int {
		la, lb := s.lastSentAt(a), s.lastSentAt(b)
		if c := lb.Compare(la); c != 0 {
			return c
		}
		return strings.Compare(a.String(), b.String())
	})
	return peers
}

func (s State) lastSentAt(peer models.Address) time.Time {
	msgs := s.ConversationMessages[peer]
	if len(msgs) == 0 {
		return time.Time{}
	}
	return msgs[len(msgs)-1].SentAt
}
