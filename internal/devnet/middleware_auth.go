package devnet

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/internal/utils"
	"github.com/MKhiriev/go-indie-chat/models"
)

// withEnvironment resolves the X-Network-Env header into the request
// context. Requests without a known environment are rejected with 400.
func (h *Handler) withEnvironment(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env, err := models.ParseEnvironment(r.Header.Get(network.HeaderEnvironment))
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("rejecting request without environment")
			http.Error(w, ErrUnknownEnvironment.Error(), http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), utils.EnvironmentCtxKey, env)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// auth enforces installation tokens. On success the wallet address from the
// token subject is stored in the request context under
// [utils.AddressCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		env, _ := utils.GetEnvironmentFromContext(r.Context())
		if _, err := h.registry.Identity(env, token.Address); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrIdentityNotFound) {
				status = http.StatusUnauthorized
			}
			log.Err(err).Str("address", token.Address.String()).Msg("token for unknown identity")
			http.Error(w, http.StatusText(status), status)
			return
		}

		ctx := context.WithValue(r.Context(), utils.AddressCtxKey, token.Address)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
