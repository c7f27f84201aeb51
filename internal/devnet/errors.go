package devnet

import "errors"

var (
	ErrEmptyAuthorizationHeader   = errors.New("empty authorization header")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrUnknownEnvironment         = errors.New("unknown network environment")

	ErrInvalidInstallation = errors.New("invalid installation request")
	ErrInvalidSignature    = errors.New("wallet signature does not authorize the identity key")
	ErrIdentityNotFound    = errors.New("identity not found")
	ErrConversationExists  = errors.New("conversation already exists")
	ErrConversationMissing = errors.New("conversation not found")
	ErrNotParticipant      = errors.New("address does not take part in the conversation")
	ErrSelfConversation    = errors.New("cannot start a conversation with yourself")
	ErrEmptyContent        = errors.New("empty message content")
)
