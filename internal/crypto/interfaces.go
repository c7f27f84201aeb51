package crypto

import (
	"crypto/ed25519"

	"github.com/MKhiriev/go-indie-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService turns a wallet signature into a messaging identity.
// It knows nothing about the network or the session.
//
// Flow:
//
//	req   = KeyRequest(address, env)                    (step 1)
//	sig   = wallet.SignMessage(req)                     (step 2)
//	keys  = DeriveIdentity(address, env, sig)           (step 3)
//	proof = InstallationProof(keys)                     (step 4)
type KeyChainService interface {
	// KeyRequest returns the deterministic text the wallet signs to
	// authorize an identity for address on env. The same inputs always
	// produce the same bytes, so the same wallet always derives the same
	// identity.
	KeyRequest(address models.Address, env models.Environment) []byte

	// DeriveIdentity expands the wallet signature with HKDF-SHA256 into an
	// ed25519 identity key pair.
	DeriveIdentity(address models.Address, env models.Environment, walletSignature []byte) (models.IdentityKeys, error)

	// InstallationProof signs the address and public key with the identity
	// private key, proving possession of the key to the network.
	InstallationProof(keys models.IdentityKeys) ([]byte, error)

	// VerifyInstallationProof checks a proof produced by InstallationProof.
	VerifyInstallationProof(address models.Address, publicKey ed25519.PublicKey, proof []byte) bool
}
