// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/ed25519"
	"strings"
)

// Environment selects which deployment of the messaging network to talk to.
type Environment string

const (
	EnvironmentLocal      Environment = "local"
	EnvironmentDev        Environment = "dev"
	EnvironmentProduction Environment = "production"
)

// ParseEnvironment validates raw as a known [Environment].
func ParseEnvironment(raw string) (Environment, error) {
	switch env := Environment(strings.ToLower(strings.TrimSpace(raw))); env {
	case EnvironmentLocal, EnvironmentDev, EnvironmentProduction:
		return env, nil
	default:
		return "", ErrUnknownEnvironment
	}
}

// IdentityKeys is the messaging identity derived from a wallet signer.
//
// PrivateKey never leaves the client. WalletSignature proves to the network
// that the wallet owner authorized PublicKey.
type IdentityKeys struct {
	Address         Address
	Environment     Environment
	PublicKey       ed25519.PublicKey
	PrivateKey      ed25519.PrivateKey
	WalletSignature []byte
}

// Validate checks that all parts of the identity are present.
func (k IdentityKeys) Validate() error {
	if k.Address.IsZero() || len(k.PublicKey) != ed25519.PublicKeySize ||
		len(k.PrivateKey) != ed25519.PrivateKeySize || len(k.WalletSignature) == 0 {
		return ErrEmptyIdentityKeys
	}
	return nil
}

// Zero overwrites the private key material in place.
func (k *IdentityKeys) Zero() {
	for i := range k.PrivateKey {
		k.PrivateKey[i] = 0
	}
	k.PrivateKey = nil
}
