package devnet

import (
	"crypto/ed25519"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/models"
)

type identity struct {
	address        models.Address
	publicKey      ed25519.PublicKey
	installationID string
	registeredAt   time.Time
}

type conversation struct {
	topic          string
	conversationID string
	members        [2]models.Address
	createdAt      time.Time
	metadata       map[string]string
	messages       []models.RawMessage
}

func (c *conversation) peerOf(address models.Address) (models.Address, bool) {
	switch {
	case c.members[0].Equal(address):
		return c.members[1], true
	case c.members[1].Equal(address):
		return c.members[0], true
	default:
		return "", false
	}
}

func (c *conversation) payloadFor(address models.Address) (network.ConversationPayload, bool) {
	peer, ok := c.peerOf(address)
	if !ok {
		return network.ConversationPayload{}, false
	}
	return network.ConversationPayload{
		PeerAddress:    peer,
		ConversationID: c.conversationID,
		Topic:          c.topic,
		CreatedAt:      c.createdAt,
		Metadata:       c.metadata,
	}, true
}

type partition struct {
	identities    map[models.Address]identity
	conversations map[string]*conversation
	order         []string
}

func newPartition() *partition {
	return &partition{
		identities:    make(map[models.Address]identity),
		conversations: make(map[string]*conversation),
	}
}

// Registry is the in-memory state of the development network. It is safe
// for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	partitions map[models.Environment]*partition

	newID  func() string
	broker *Broker
	now    func() time.Time
}

// NewRegistry creates an empty registry publishing new conversations to
// broker.
func NewRegistry(broker *Broker) *Registry {
	return &Registry{
		partitions: make(map[models.Environment]*partition),
		newID:      newID,
		broker:     broker,
		now:        time.Now,
	}
}

func (r *Registry) partition(env models.Environment) *partition {
	p, ok := r.partitions[env]
	if !ok {
		p = newPartition()
		r.partitions[env] = p
	}
	return p
}

// Register stores the identity of address. Re-registering replaces the key
// and issues a new installation ID. It reports whether the address was new.
func (r *Registry) Register(env models.Environment, address models.Address, publicKey ed25519.PublicKey) (string, bool) {
	address = models.NewAddress(address.String())

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.partition(env)
	_, existed := p.identities[address]
	installationID := r.newID()
	p.identities[address] = identity{
		address:        address,
		publicKey:      slices.Clone(publicKey),
		installationID: installationID,
		registeredAt:   r.now().UTC(),
	}
	return installationID, !existed
}

// Identity returns the registered identity of address.
func (r *Registry) Identity(env models.Environment, address models.Address) (network.IdentityResponse, error) {
	address = models.NewAddress(address.String())

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.partitions[env]
	if !ok {
		return network.IdentityResponse{}, ErrIdentityNotFound
	}
	id, ok := p.identities[address]
	if !ok {
		return network.IdentityResponse{}, ErrIdentityNotFound
	}
	return network.IdentityResponse{Address: id.address, PublicKey: slices.Clone(id.publicKey)}, nil
}

// CreateConversation opens a conversation between from and to and notifies
// both. The peer does not need a registered identity.
func (r *Registry) CreateConversation(env models.Environment, from, to models.Address, conversationID string, metadata map[string]string) (network.ConversationPayload, error) {
	from, to = models.NewAddress(from.String()), models.NewAddress(to.String())
	if from.Equal(to) {
		return network.ConversationPayload{}, ErrSelfConversation
	}
	if to.IsZero() {
		return network.ConversationPayload{}, models.ErrEmptyPeerAddress
	}

	r.mu.Lock()
	p := r.partition(env)
	conversationID = strings.TrimSpace(conversationID)
	if conversationID != "" {
		for _, existing := range p.conversations {
			if existing.conversationID == conversationID {
				if _, ok := existing.peerOf(from); ok {
					r.mu.Unlock()
					return network.ConversationPayload{}, ErrConversationExists
				}
			}
		}
	}

	conv := &conversation{
		topic:          newTopic(r.newID()),
		conversationID: conversationID,
		members:        [2]models.Address{from, to},
		createdAt:      r.now().UTC(),
		metadata:       maps.Clone(metadata),
	}
	p.conversations[conv.topic] = conv
	p.order = append(p.order, conv.topic)

	forSender, _ := conv.payloadFor(from)
	forPeer, _ := conv.payloadFor(to)
	r.mu.Unlock()

	r.broker.Publish(env, from, network.StreamEvent{Type: network.StreamEventConversation, Conversation: forSender})
	r.broker.Publish(env, to, network.StreamEvent{Type: network.StreamEventConversation, Conversation: forPeer})

	return forSender, nil
}

// Conversations lists the conversations of address in creation order, each
// described from the point of view of address.
func (r *Registry) Conversations(env models.Environment, address models.Address) []network.ConversationPayload {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.partitions[env]
	if !ok {
		return []network.ConversationPayload{}
	}

	out := make([]network.ConversationPayload, 0)
	for _, topic := range p.order {
		if payload, ok := p.conversations[topic].payloadFor(address); ok {
			out = append(out, payload)
		}
	}
	return out
}

// Messages returns the history of topic, oldest first. Only participants
// may read it.
func (r *Registry) Messages(env models.Environment, address models.Address, topic string) ([]network.MessagePayload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, err := r.participantConversation(env, address, topic)
	if err != nil {
		return nil, err
	}

	out := make([]network.MessagePayload, 0, len(conv.messages))
	for _, m := range conv.messages {
		out = append(out, network.NewMessagePayload(m))
	}
	return out, nil
}

// PostMessage appends a text message from sender to topic.
func (r *Registry) PostMessage(env models.Environment, sender models.Address, topic, content string) (network.MessagePayload, error) {
	if strings.TrimSpace(content) == "" {
		return network.MessagePayload{}, ErrEmptyContent
	}

	r.mu.Lock()
	conv, err := r.participantConversation(env, sender, topic)
	if err != nil {
		r.mu.Unlock()
		return network.MessagePayload{}, err
	}

	sentAt := r.now().UTC()
	if n := len(conv.messages); n > 0 && !sentAt.After(conv.messages[n-1].SentAt) {
		sentAt = conv.messages[n-1].SentAt.Add(time.Millisecond)
	}

	msg := models.RawMessage{
		ID:            r.newID(),
		SenderAddress: sender,
		Content:       content,
		ContentType:   "text/plain",
		SentAt:        sentAt,
	}
	conv.messages = append(conv.messages, msg)
	payload := network.NewMessagePayload(msg)

	members := conv.members
	views := make([]network.ConversationPayload, len(members))
	for i, member := range members {
		views[i], _ = conv.payloadFor(member)
	}
	r.mu.Unlock()

	for i, member := range members {
		r.broker.Publish(env, member, network.StreamEvent{Type: network.StreamEventMessage, Conversation: views[i], Message: &payload})
	}
	return payload, nil
}

func (r *Registry) participantConversation(env models.Environment, address models.Address, topic string) (*conversation, error) {
	p, ok := r.partitions[env]
	if !ok {
		return nil, ErrConversationMissing
	}
	conv, ok := p.conversations[topic]
	if !ok {
		return nil, ErrConversationMissing
	}
	if _, ok := conv.peerOf(address); !ok {
		return nil, ErrNotParticipant
	}
	return conv, nil
}
