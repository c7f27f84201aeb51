package devnet

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-indie-chat/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidInstallation: http.StatusBadRequest,
	ErrInvalidSignature:    http.StatusForbidden,
	ErrIdentityNotFound:    http.StatusNotFound,
	ErrConversationExists:  http.StatusConflict,
	ErrConversationMissing: http.StatusNotFound,
	ErrNotParticipant:      http.StatusForbidden,
	ErrSelfConversation:    http.StatusBadRequest,
	ErrEmptyContent:        http.StatusBadRequest,

	models.ErrEmptyPeerAddress: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
