package devnet

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/internal/crypto"
	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/metrics"
	"github.com/MKhiriev/go-indie-chat/models"
)

const (
	streamPingInterval = 30 * time.Second
	streamWriteTimeout = 5 * time.Second
)

// Handler serves the gateway API over a [Registry].
type Handler struct {
	registry *Registry
	broker   *Broker
	keychain crypto.KeyChainService

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	seedPeers     []models.Address
	seedNamespace string

	metrics  *metrics.HTTP
	gatherer prometheus.Gatherer
	upgrader websocket.Upgrader

	closeOnce sync.Once
	done      chan struct{}

	logger *logger.Logger
}

// NewHandler creates the gateway handler. m and gatherer may be nil, in
// which case requests are not measured and /metrics is not served.
func NewHandler(cfg config.Devnet, registry *Registry, broker *Broker, keychain crypto.KeyChainService,
	m *metrics.HTTP, gatherer prometheus.Gatherer, log *logger.Logger) *Handler {
	seedPeers := make([]models.Address, 0, len(cfg.SeedPeers))
	for _, raw := range cfg.SeedPeers {
		if peer := models.NewAddress(raw); !peer.IsZero() {
			seedPeers = append(seedPeers, peer)
		}
	}

	log.Info().Int("seed_peers", len(seedPeers)).Msg("devnet http handler created")
	return &Handler{
		registry:      registry,
		broker:        broker,
		keychain:      keychain,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		seedPeers:     seedPeers,
		seedNamespace: cfg.SeedNamespace,
		metrics:       m,
		gatherer:      gatherer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		done:   make(chan struct{}),
		logger: log,
	}
}

// Close ends every open conversation stream. Hijacked websocket connections
// are not tracked by http.Server.Shutdown.
func (h *Handler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}
