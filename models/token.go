package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the installation JWT issued by the messaging gateway when a
// client is created.
//
// The "sub" claim carries the wallet address of the installation owner and
// "jti" the installation identifier.
type Token struct {
	// Token is the parsed JWT. Excluded from JSON; only the compact string
	// travels between processes.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation.
	SignedString string `json:"-"`

	// Address is a cached, canonical copy of the subject claim.
	Address Address `json:"-"`
}

// GetAddress extracts the wallet address from the subject claim.
func (t *Token) GetAddress() (Address, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting address from token: %w", err)
	}
	addr := NewAddress(sub)
	if addr.IsZero() {
		return "", fmt.Errorf("error extracting address from token: %w", ErrEmptyPeerAddress)
	}
	return addr, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
