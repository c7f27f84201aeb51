// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"strings"
	"time"
)

// Conversation is a thread between the own identity and one peer.
type Conversation struct {
	// PeerAddress is the counterpart wallet. Session state is keyed by it.
	PeerAddress Address `json:"peer_address"`

	// ConversationID is the identifier assigned by the application, not by the
	// network. It carries the application namespace prefix; conversations
	// created by other applications on the same network use other prefixes
	// or none at all.
	ConversationID string `json:"conversation_id,omitempty"`

	// Topic is the network-assigned identifier used to fetch messages.
	Topic string `json:"topic"`

	// CreatedAt is when the network first saw the conversation.
	CreatedAt time.Time `json:"created_at"`

	// Metadata holds application context attached at creation time.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewConversation validates and builds a [Conversation].
func NewConversation(peer Address, conversationID, topic string, createdAt time.Time) (Conversation, error) {
	peer = NewAddress(string(peer))
	if peer.IsZero() {
		return Conversation{}, ErrEmptyPeerAddress
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Conversation{}, ErrEmptyTopic
	}

	return Conversation{
		PeerAddress:    peer,
		ConversationID: strings.TrimSpace(conversationID),
		Topic:          topic,
		CreatedAt:      createdAt.UTC(),
	}, nil
}

// HasNamespace reports whether the application identifier starts with prefix.
// An empty prefix matches nothing: a session without a namespace would
// otherwise surface every conversation of the wallet.
func (c Conversation) HasNamespace(prefix string) bool {
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(c.ConversationID, prefix)
}

// Clone returns a copy that shares no mutable state with c.
func (c Conversation) Clone() Conversation {
	c.Metadata = maps.Clone(c.Metadata)
	return c
}
