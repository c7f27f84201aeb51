package client

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/internal/crypto"
	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/metrics"
	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/internal/server"
	"github.com/MKhiriev/go-indie-chat/internal/session"
	"github.com/MKhiriev/go-indie-chat/internal/tui"
	"github.com/MKhiriev/go-indie-chat/internal/wallet"
	"github.com/MKhiriev/go-indie-chat/models"
)

type App struct {
	signer  wallet.Signer
	session *session.Session
	tui     *tui.TUI
	metrics server.Server
	logger  *logger.Logger
}

// NewApp assembles the client from cfg. Nothing touches the network until
// Run.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	signer, err := wallet.NewSignerFromConfig(cfg.Wallet)
	if err != nil {
		return nil, fmt.Errorf("create wallet signer: %w", err)
	}
	if cfg.Wallet.PrivateKey == "" && cfg.Wallet.KeyFile == "" {
		log.Warn().Str("address", signer.Address().String()).Msg("no wallet configured, using an ephemeral one")
	}

	reg := prometheus.NewRegistry()
	gateway, err := network.NewGateway(cfg.Network, crypto.NewKeyChainService(), metrics.NewHTTP(reg, "gateway"), log)
	if err != nil {
		return nil, fmt.Errorf("create network gateway: %w", err)
	}

	sess := session.New(gateway, cfg.Network.Env, cfg.Session, metrics.NewSession(reg), log)

	app := &App{
		signer:  signer,
		session: sess,
		tui:     tui.New(sess, buildInfo, log),
		logger:  log,
	}

	if cfg.MetricsAddress != "" {
		app.metrics, err = server.NewServer(log, server.Listener{
			Name:    "metrics",
			Address: cfg.MetricsAddress,
			Handler: metrics.Handler(reg),
		})
		if err != nil {
			sess.Close()
			return nil, fmt.Errorf("create metrics server: %w", err)
		}
	}

	return app, nil
}

// Run implements [Client]. It shows the UI until the user quits and then
// closes the session.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.session.Close()

	if a.metrics != nil {
		go func() {
			if err := a.metrics.Run(ctx); err != nil {
				a.logger.Err(err).Msg("metrics server stopped")
			}
		}()
	}

	// The signer is active before the first key press. The existence check
	// is a network round trip; the UI renders the pending phase meanwhile.
	if a.session.SelectSigner(a.signer) {
		go func() {
			if err := a.session.CheckExistence(ctx); err != nil {
				a.logger.Err(err).Msg("identity existence check failed")
			}
		}()
	}

	return a.tui.Run(ctx)
}
