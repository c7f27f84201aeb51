package network

import (
	"maps"
	"time"

	"github.com/MKhiriev/go-indie-chat/models"
)

// InstallationRequest registers an identity with the gateway.
type InstallationRequest struct {
	Address         models.Address `json:"address"`
	PublicKey       []byte         `json:"public_key"`
	WalletSignature []byte         `json:"wallet_signature"`
	Proof           []byte         `json:"proof"`
}

// IdentityResponse describes a registered identity.
type IdentityResponse struct {
	Address   models.Address `json:"address"`
	PublicKey []byte         `json:"public_key"`
}

// ConversationPayload is the wire form of a conversation.
type ConversationPayload struct {
	PeerAddress    models.Address    `json:"peer_address"`
	ConversationID string            `json:"conversation_id,omitempty"`
	Topic          string            `json:"topic"`
	CreatedAt      time.Time         `json:"created_at"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// MessagePayload is the wire form of a message.
type MessagePayload struct {
	ID            string         `json:"id"`
	SenderAddress models.Address `json:"sender_address"`
	Content       string         `json:"content"`
	ContentType   string         `json:"content_type,omitempty"`
	SentAt        time.Time      `json:"sent_at"`
}

// StreamEvent is one frame of the conversation stream. Message events carry
// the conversation the message was posted to.
type StreamEvent struct {
	Type         string              `json:"type"`
	Conversation ConversationPayload `json:"conversation"`
	Message      *MessagePayload     `json:"message,omitempty"`
}

const (
	// StreamEventConversation announces a newly created conversation.
	StreamEventConversation = "conversation"
	// StreamEventMessage announces a message posted to a conversation.
	StreamEventMessage = "message"
)

// NewConversationPayload converts a conversation seen from the receiving
// side.
func NewConversationPayload(c models.Conversation) ConversationPayload {
	return ConversationPayload{
		PeerAddress:    c.PeerAddress,
		ConversationID: c.ConversationID,
		Topic:          c.Topic,
		CreatedAt:      c.CreatedAt,
		Metadata:       c.Metadata,
	}
}

// Model validates the payload into a [models.Conversation].
func (p ConversationPayload) Model() (models.Conversation, error) {
	conv, err := models.NewConversation(p.PeerAddress, p.ConversationID, p.Topic, p.CreatedAt)
	if err != nil {
		return models.Conversation{}, err
	}
	conv.Metadata = maps.Clone(p.Metadata)
	return conv, nil
}

// NewMessagePayload converts a raw message to its wire form.
func NewMessagePayload(m models.RawMessage) MessagePayload {
	return MessagePayload{
		ID:            m.ID,
		SenderAddress: m.SenderAddress,
		Content:       m.Content,
		ContentType:   m.ContentType,
		SentAt:        m.SentAt,
	}
}

// Model converts the payload to a [models.RawMessage]. Raw messages are
// validated later, when they are normalized.
func (p MessagePayload) Model() models.RawMessage {
	return models.RawMessage{
		ID:            p.ID,
		SenderAddress: models.NewAddress(string(p.SenderAddress)),
		Content:       p.Content,
		ContentType:   p.ContentType,
		SentAt:        p.SentAt,
	}
}
