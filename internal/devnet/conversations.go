package devnet

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/utils"
	"github.com/MKhiriev/go-indie-chat/models"
)

// CreateConversationRequest opens a conversation with a peer.
type CreateConversationRequest struct {
	PeerAddress    models.Address    `json:"peer_address"`
	ConversationID string            `json:"conversation_id,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// PostMessageRequest appends a message to a conversation.
type PostMessageRequest struct {
	Content string `json:"content"`
}

func (h *Handler) listConversations(w http.ResponseWriter, r *http.Request) {
	env, _ := utils.GetEnvironmentFromContext(r.Context())
	address, _ := utils.GetAddressFromContext(r.Context())

	_, _ = utils.WriteJSON(w, h.registry.Conversations(env, address), http.StatusOK)
}

func (h *Handler) createConversation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	env, _ := utils.GetEnvironmentFromContext(r.Context())
	address, _ := utils.GetAddressFromContext(r.Context())

	var req CreateConversationRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conv, err := h.registry.CreateConversation(env, address, models.NewAddress(req.PeerAddress.String()), req.ConversationID, req.Metadata)
	if err != nil {
		log.Err(err).Msg("error creating conversation")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, conv, http.StatusCreated)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	env, _ := utils.GetEnvironmentFromContext(r.Context())
	address, _ := utils.GetAddressFromContext(r.Context())

	topic, err := topicParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	messages, err := h.registry.Messages(env, address, topic)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	env, _ := utils.GetEnvironmentFromContext(r.Context())
	address, _ := utils.GetAddressFromContext(r.Context())

	topic, err := topicParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req PostMessageRequest
	if err = utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := h.registry.PostMessage(env, address, topic, req.Content)
	if err != nil {
		log.Err(err).Msg("error posting message")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, msg, http.StatusCreated)
}

// topicParam returns the unescaped topic; topics contain slashes and travel
// path-escaped.
func topicParam(r *http.Request) (string, error) {
	return url.PathUnescape(chi.URLParam(r, "topic"))
}
