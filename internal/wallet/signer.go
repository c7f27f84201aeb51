// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/models"
)

// KeySigner signs with a locally held secp256k1 key using the EIP-191
// personal message scheme.
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address models.Address
}

// NewKeySigner wraps an existing private key.
func NewKeySigner(key *ecdsa.PrivateKey) *KeySigner {
	return &KeySigner{
		key:     key,
		address: models.NewAddress(crypto.PubkeyToAddress(key.PublicKey).Hex()),
	}
}

// NewKeySignerFromHex decodes a hex private key, with or without 0x prefix.
func NewKeySignerFromHex(hexKey string) (*KeySigner, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return NewKeySigner(key), nil
}

// LoadKeySigner reads a hex private key from file.
func LoadKeySigner(path string) (*KeySigner, error) {
	key, err := crypto.LoadECDSA(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return NewKeySigner(key), nil
}

// GenerateKeySigner creates a signer with a fresh random key.
func GenerateKeySigner() (*KeySigner, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("error generating wallet key: %w", err)
	}
	return NewKeySigner(key), nil
}

// NewSignerFromConfig picks the key source configured in cfg. Without a key
// or key file an ephemeral wallet is generated.
func NewSignerFromConfig(cfg config.Wallet) (*KeySigner, error) {
	switch {
	case cfg.PrivateKey != "":
		return NewKeySignerFromHex(cfg.PrivateKey)
	case cfg.KeyFile != "":
		return LoadKeySigner(cfg.KeyFile)
	default:
		return GenerateKeySigner()
	}
}

// Address implements [Signer].
func (s *KeySigner) Address() models.Address {
	return s.address
}

// SignMessage implements [Signer]. The returned signature is 65 bytes
// (R || S || V) with V in {27, 28}.
func (s *KeySigner) SignMessage(ctx context.Context, msg []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(accounts.TextHash(msg), s.key)
	if err != nil {
		return nil, fmt.Errorf("error signing message: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// PrivateKeyHex exports the key as hex without 0x prefix.
func (s *KeySigner) PrivateKeyHex() string {
	return fmt.Sprintf("%x", crypto.FromECDSA(s.key))
}

// RecoverAddress returns the address that produced sig over msg with
// [KeySigner.SignMessage].
func RecoverAddress(msg, sig []byte) (models.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return "", ErrInvalidSignature
	}

	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash(msg), normalized)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return models.NewAddress(crypto.PubkeyToAddress(*pub).Hex()), nil
}

// VerifySignature reports whether sig over msg was produced by address.
func VerifySignature(address models.Address, msg, sig []byte) error {
	recovered, err := RecoverAddress(msg, sig)
	if err != nil {
		return err
	}
	if !recovered.Equal(address) {
		return ErrInvalidSignature
	}
	return nil
}
