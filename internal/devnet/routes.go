package devnet

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-indie-chat/internal/metrics"
	"github.com/MKhiriev/go-indie-chat/internal/network"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.metrics.Middleware)

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if h.gatherer != nil {
		router.Handle("/metrics", metrics.Handler(h.gatherer))
	}

	router.Group(func(r chi.Router) {
		r.Use(h.withEnvironment)

		// routes without authorization
		r.Post(network.RouteInstallations, h.createInstallation)
		r.Get(network.RouteIdentity, h.getIdentity)

		// routes with installation token
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get(network.RouteConversations, h.listConversations)
			r.Post(network.RouteConversations, h.createConversation)
			r.Get(network.RouteStream, h.streamConversations)
			r.Get(network.RouteMessages, h.listMessages)
			r.Post(network.RouteMessages, h.postMessage)
		})
	})

	return router
}
