package wallet

import "errors"

var (
	// ErrInvalidKey is returned when a private key cannot be decoded.
	ErrInvalidKey = errors.New("invalid wallet private key")
	// ErrInvalidSignature is returned when a signature is malformed or does
	// not recover to the expected address.
	ErrInvalidSignature = errors.New("invalid wallet signature")
)
