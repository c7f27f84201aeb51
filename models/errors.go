package models

import "errors"

// Validation errors returned by the constructors in this package.
var (
	ErrEmptyPeerAddress   = errors.New("peer address is empty")
	ErrEmptyTopic         = errors.New("conversation topic is empty")
	ErrEmptyMessageID     = errors.New("message id is empty")
	ErrEmptySender        = errors.New("message sender is empty")
	ErrZeroTimestamp      = errors.New("message timestamp is zero")
	ErrEmptyIdentityKeys  = errors.New("identity keys are empty")
	ErrUnknownEnvironment = errors.New("unknown network environment")
)
