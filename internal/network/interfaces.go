package network

import (
	"context"

	"github.com/MKhiriev/go-indie-chat/internal/wallet"
	"github.com/MKhiriev/go-indie-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/network_mock.go -package=mock

// Network is the entry point to the messaging network.
type Network interface {
	// DeriveKeys asks signer to authorize a messaging identity for env and
	// returns the derived identity keys.
	DeriveKeys(ctx context.Context, signer wallet.Signer, env models.Environment) (models.IdentityKeys, error)

	// Create registers an installation of keys with the network and returns
	// a client bound to it.
	Create(ctx context.Context, keys models.IdentityKeys, env models.Environment) (Client, error)

	// CanMessage reports whether address already has a messaging identity
	// on env.
	CanMessage(ctx context.Context, address models.Address, env models.Environment) (bool, error)
}

// Client is an authenticated session handle on the network.
type Client interface {
	// Address returns the wallet address the client acts for.
	Address() models.Address

	// ListConversations returns every conversation the client takes part
	// in, in the order the network reports them.
	ListConversations(ctx context.Context) ([]Conversation, error)
}

// Conversation is a handle on one conversation of a [Client].
type Conversation interface {
	// Info returns the conversation descriptor.
	Info() models.Conversation

	// Messages fetches the full message history, oldest first.
	Messages(ctx context.Context) ([]models.RawMessage, error)
}

// ConversationStreamer is implemented by clients that can push conversations
// created or changed after the initial listing.
type ConversationStreamer interface {
	// StreamConversations delivers new conversations, and conversations
	// that received a message, until ctx is done or the stream breaks, then
	// closes the channel. A conversation may be delivered more than once.
	StreamConversations(ctx context.Context) (<-chan Conversation, error)
}
