package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/internal/devnet"
	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/metrics"
	"github.com/MKhiriev/go-indie-chat/internal/server"
	"github.com/MKhiriev/go-indie-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("indie-devnet")
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting development network")

	cfg, err := config.GetDevnetConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.TokenSignKey == "" {
		cfg.TokenSignKey = randomSignKey()
		log.Warn().Msg("no token sign key configured, tokens will not survive a restart")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	network := devnet.New(cfg.Devnet, reg, log)
	defer network.Close()

	srv, err := server.NewServer(log,
		server.Listener{Name: "gateway", Address: cfg.Address, Handler: network.HTTPHandler()},
		server.Listener{Name: "metrics", Address: cfg.MetricsAddress, Handler: metrics.Handler(reg)},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(context.Background()); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func randomSignKey() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
