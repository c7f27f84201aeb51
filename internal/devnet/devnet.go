package devnet

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/internal/crypto"
	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/metrics"
)

// Devnet bundles the registry, the event broker and the HTTP handler of a
// development network.
type Devnet struct {
	Registry *Registry
	Broker   *Broker
	Handler  *Handler
}

// New assembles a development network. Request metrics are registered on
// reg and exposed on /metrics when reg is non-nil.
func New(cfg config.Devnet, reg *prometheus.Registry, log *logger.Logger) *Devnet {
	broker := NewBroker(log.WithComponent("broker"))
	registry := NewRegistry(broker)

	var (
		m        *metrics.HTTP
		gatherer prometheus.Gatherer
	)
	if reg != nil {
		m = metrics.NewHTTP(reg, "devnet")
		gatherer = reg
	}

	handler := NewHandler(cfg, registry, broker, crypto.NewKeyChainService(), m, gatherer, log)
	return &Devnet{Registry: registry, Broker: broker, Handler: handler}
}

// HTTPHandler returns the routed gateway API.
func (d *Devnet) HTTPHandler() http.Handler {
	return d.Handler.Init()
}

// Close ends every open conversation stream.
func (d *Devnet) Close() {
	d.Handler.Close()
}
