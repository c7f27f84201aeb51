package models

import "time"

// RawMessage is a decoded message as returned by the messaging network,
// before normalization into a [ChatMessage].
type RawMessage struct {
	ID            string    `json:"id"`
	SenderAddress Address   `json:"sender_address"`
	Content       string    `json:"content"`
	ContentType   string    `json:"content_type,omitempty"`
	SentAt        time.Time `json:"sent_at"`
}
