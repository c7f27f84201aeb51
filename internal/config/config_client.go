package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-indie-chat/models"
)

// ClientNetwork holds the gateway settings used by the client transport.
type ClientNetwork struct {
	// Env is the parsed network environment.
	Env models.Environment
	// GatewayAddress is the base URL of the network gateway.
	GatewayAddress string
	// RequestTimeout bounds a single gateway request.
	RequestTimeout time.Duration
	// RateLimit is the sustained request rate in requests per second.
	RateLimit float64
	// RateBurst is the request burst allowed above RateLimit.
	RateBurst int
}

// ClientSession holds the session engine settings.
type ClientSession struct {
	NamespacePrefix     string
	FetchConcurrency    int
	StreamRetryInterval time.Duration
}

// ClientConfig is the terminal client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Network ClientNetwork
	Session ClientSession
	Wallet  Wallet
	// MetricsAddress enables the prometheus endpoint when non-empty.
	MetricsAddress string
	// LogFile is where the client writes its logs.
	LogFile string
}

// DevnetConfig is the development gateway configuration assembled from
// [StructuredConfig].
type DevnetConfig struct {
	Devnet
	// MetricsAddress enables a separate prometheus listener when non-empty.
	// The gateway always serves /metrics on its own address as well.
	MetricsAddress string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	env, err := models.ParseEnvironment(cfg.Network.Env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNetworkConfigs, err)
	}

	clientCfg := &ClientConfig{
		Network: ClientNetwork{
			Env:            env,
			GatewayAddress: cfg.Network.GatewayAddress,
			RequestTimeout: cfg.Network.RequestTimeout,
			RateLimit:      cfg.Network.RateLimit,
			RateBurst:      cfg.Network.RateBurst,
		},
		Session: ClientSession{
			NamespacePrefix:     cfg.Session.NamespacePrefix,
			FetchConcurrency:    cfg.Session.FetchConcurrency,
			StreamRetryInterval: cfg.Session.StreamRetryInterval,
		},
		Wallet:         cfg.Wallet,
		MetricsAddress: cfg.Metrics.Address,
		LogFile:        cfg.Log.File,
	}

	return clientCfg, clientCfg.validate()
}

// GetDevnetConfig builds and validates the development gateway config view.
func GetDevnetConfig(args []string) (*DevnetConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devnetCfg := &DevnetConfig{
		Devnet:         cfg.Devnet,
		MetricsAddress: cfg.Metrics.Address,
	}

	return devnetCfg, devnetCfg.validate()
}
