// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/go-indie-chat/models"
)

const (
	hkdfInfoIdentity  = "indie-chat/identity/signing/v1"
	installationLabel = "indie-chat/installation/v1"
)

// ErrEmptySignature is returned when no wallet signature is supplied.
var ErrEmptySignature = errors.New("empty wallet signature")

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	seedLen int
}

// NewKeyChainService constructs a [KeyChainService] deriving 32-byte ed25519
// seeds.
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		seedLen: ed25519.SeedSize,
	}
}

// KeyRequest implements [KeyChainService].
func (k *keyChainService) KeyRequest(address models.Address, env models.Environment) []byte {
	return []byte(fmt.Sprintf(
		"indie-chat wants to create a messaging identity.\n\nAddress: %s\nNetwork: %s\nVersion: 1",
		address.String(), env,
	))
}

// DeriveIdentity implements [KeyChainService]. The address and environment
// are mixed in as HKDF salt so one signature never serves two identities.
func (k *keyChainService) DeriveIdentity(address models.Address, env models.Environment, walletSignature []byte) (models.IdentityKeys, error) {
	if len(walletSignature) == 0 {
		return models.IdentityKeys{}, ErrEmptySignature
	}
	if address.IsZero() {
		return models.IdentityKeys{}, models.ErrEmptyPeerAddress
	}

	salt := []byte(address.String() + "|" + string(env))
	seed := make([]byte, k.seedLen)
	reader := hkdf.New(sha256.New, walletSignature, salt, []byte(hkdfInfoIdentity))
	if _, err := io.ReadFull(reader, seed); err != nil {
		return models.IdentityKeys{}, fmt.Errorf("error expanding wallet signature: %w", err)
	}

	private := ed25519.NewKeyFromSeed(seed)
	for i := range seed {
		seed[i] = 0
	}

	signature := make([]byte, len(walletSignature))
	copy(signature, walletSignature)

	return models.IdentityKeys{
		Address:         address,
		Environment:     env,
		PublicKey:       private.Public().(ed25519.PublicKey),
		PrivateKey:      private,
		WalletSignature: signature,
	}, nil
}

// InstallationProof implements [KeyChainService].
func (k *keyChainService) InstallationProof(keys models.IdentityKeys) ([]byte, error) {
	if err := keys.Validate(); err != nil {
		return nil, err
	}
	return ed25519.Sign(keys.PrivateKey, installationMessage(keys.Address, keys.PublicKey)), nil
}

// VerifyInstallationProof implements [KeyChainService].
func (k *keyChainService) VerifyInstallationProof(address models.Address, publicKey ed25519.PublicKey, proof []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(proof) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(publicKey, installationMessage(address, publicKey), proof)
}

func installationMessage(address models.Address, publicKey ed25519.PublicKey) []byte {
	msg := make([]byte, 0, len(installationLabel)+len(address)+len(publicKey)+2)
	msg = append(msg, installationLabel...)
	msg = append(msg, '|')
	msg = append(msg, address.String()...)
	msg = append(msg, '|')
	return append(msg, publicKey...)
}
