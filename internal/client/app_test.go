package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/session"
	"github.com/MKhiriev/go-indie-chat/models"
)

func testClientConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Network: config.ClientNetwork{
			Env:            models.EnvironmentDev,
			GatewayAddress: "http://localhost:8080",
			RequestTimeout: time.Second,
			RateLimit:      10,
			RateBurst:      5,
		},
		Session: config.ClientSession{
			NamespacePrefix:     "indie-talent/",
			StreamRetryInterval: time.Second,
		},
	}
}

func TestNewApp_EphemeralWallet(t *testing.T) {
	app, err := NewApp(testClientConfig(), models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	defer app.session.Close()

	assert.False(t, app.signer.Address().IsZero())
	assert.Nil(t, app.metrics)
	assert.Equal(t, session.PhaseUninitialized, app.session.Snapshot().Phase)

	var _ Client = app
}

func TestNewApp_ConfiguredWallet(t *testing.T) {
	cfg := testClientConfig()
	cfg.Wallet.PrivateKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	cfg.MetricsAddress = "127.0.0.1:0"

	app, err := NewApp(cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	defer app.session.Close()

	assert.Equal(t, models.NewAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"), app.signer.Address())
	assert.NotNil(t, app.metrics)
}

func TestNewApp_InvalidWallet(t *testing.T) {
	cfg := testClientConfig()
	cfg.Wallet.PrivateKey = "not-hex"

	_, err := NewApp(cfg, models.AppBuildInfo{}, logger.Nop())

	assert.Error(t, err)
}
