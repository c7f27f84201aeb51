package devnet

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/internal/utils"
	"github.com/MKhiriev/go-indie-chat/internal/wallet"
	"github.com/MKhiriev/go-indie-chat/models"
)

// createInstallation registers an identity key authorized by a wallet
// signature and answers with an installation token in the Authorization
// header.
//
// The wallet signature must recover to the address over the key request of
// the environment, the public key must be the one derived from that
// signature, and the proof must be signed by the identity key.
func (h *Handler) createInstallation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	env, _ := utils.GetEnvironmentFromContext(r.Context())

	var req network.InstallationRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Send()
		http.Error(w, ErrInvalidInstallation.Error(), http.StatusBadRequest)
		return
	}

	address, err := h.verifyInstallation(env, req)
	if err != nil {
		log.Err(err).Str("address", req.Address.String()).Msg("installation rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	installationID, created := h.registry.Register(env, address, req.PublicKey)
	if created {
		h.seed(r, env, address)
	}

	token, err := utils.GenerateJWTToken(h.tokenIssuer, address, installationID, h.tokenDuration, h.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("error issuing installation token")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("address", address.String()).Bool("new_identity", created).Msg("installation created")
	w.Header().Set("Authorization", "Bearer "+token.String())
	_, _ = utils.WriteJSON(w, network.IdentityResponse{Address: address, PublicKey: req.PublicKey}, http.StatusCreated)
}

func (h *Handler) verifyInstallation(env models.Environment, req network.InstallationRequest) (models.Address, error) {
	address := models.NewAddress(req.Address.String())
	if address.IsZero() || len(req.PublicKey) != ed25519.PublicKeySize || len(req.WalletSignature) == 0 {
		return "", ErrInvalidInstallation
	}

	if err := wallet.VerifySignature(address, h.keychain.KeyRequest(address, env), req.WalletSignature); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	derived, err := h.keychain.DeriveIdentity(address, env, req.WalletSignature)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInstallation, err)
	}
	defer derived.Zero()
	if !bytes.Equal(derived.PublicKey, req.PublicKey) {
		return "", ErrInvalidSignature
	}

	if !h.keychain.VerifyInstallationProof(address, req.PublicKey, req.Proof) {
		return "", ErrInvalidSignature
	}
	return address, nil
}

// getIdentity answers 200 with the identity of a registered address and 404
// otherwise.
func (h *Handler) getIdentity(w http.ResponseWriter, r *http.Request) {
	env, _ := utils.GetEnvironmentFromContext(r.Context())
	address := models.NewAddress(chi.URLParam(r, "address"))

	identity, err := h.registry.Identity(env, address)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, identity, http.StatusOK)
}
