package wallet

import (
	"context"

	"github.com/MKhiriev/go-indie-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_signer_mock.go -package=mock

// Signer is the wallet capability the session layer authenticates with.
//
// Implementations must be safe for concurrent use.
type Signer interface {
	// Address returns the wallet address the signer controls.
	Address() models.Address
	// SignMessage produces a personal-message signature over msg.
	SignMessage(ctx context.Context, msg []byte) ([]byte, error)
}
