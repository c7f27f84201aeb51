// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Direction tells whether a message was sent or received by the own wallet.
type Direction int

const (
	DirectionReceived Direction = iota
	DirectionSent
)

// String implements [fmt.Stringer].
func (d Direction) String() string {
	if d == DirectionSent {
		return "sent"
	}
	return "received"
}

// ChatMessage is the normalized message record exposed to the presentation
// layer.
type ChatMessage struct {
	ID               string    `json:"id"`
	SenderAddress    Address   `json:"sender_address"`
	RecipientAddress Address   `json:"recipient_address"`
	Content          string    `json:"content"`
	SentAt           time.Time `json:"sent_at"`
}

// NewChatMessage normalizes raw into a [ChatMessage] for the conversation
// between own and peer. The recipient is whichever party did not send it.
func NewChatMessage(raw RawMessage, own, peer Address) (ChatMessage, error) {
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return ChatMessage{}, ErrEmptyMessageID
	}
	sender := NewAddress(string(raw.SenderAddress))
	if sender.IsZero() {
		return ChatMessage{}, ErrEmptySender
	}
	if raw.SentAt.IsZero() {
		return ChatMessage{}, ErrZeroTimestamp
	}

	recipient := NewAddress(string(own))
	if sender.Equal(own) {
		recipient = NewAddress(string(peer))
	}

	return ChatMessage{
		ID:               id,
		SenderAddress:    sender,
		RecipientAddress: recipient,
		Content:          raw.Content,
		SentAt:           raw.SentAt.UTC(),
	}, nil
}

// Direction derives sent/received by comparing the sender with own.
func (m ChatMessage) Direction(own Address) Direction {
	if m.SenderAddress.Equal(own) {
		return DirectionSent
	}
	return DirectionReceived
}
