package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-indie-chat/internal/client"
	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log := logger.NewClientLogger("indie-chat-client", "")
		log.Err(err).Msg("error getting configs")
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("indie-chat-client", cfg.LogFile)
	log.Debug().Any("network", cfg.Network).Any("session", cfg.Session).Msg("received configs")

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
