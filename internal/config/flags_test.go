package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", errorMsg: "need address in a form `host:port`"},
		{name: "port out of range", input: "localhost:70000", errorMsg: "port number must be in range 1-65535"},
		{name: "bad host", input: "not-an-ip:80", errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.errorMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	// Arrange
	args := []string{
		"-env", "local",
		"-gateway", "http://127.0.0.1:8080",
		"-request-timeout", "3s",
		"-rate-limit", "7",
		"-rate-burst", "2",
		"-namespace", "acme/",
		"-fetch-concurrency", "8",
		"-stream-retry", "1s",
		"-wallet-key-file", "/keys/wallet.hex",
		"-a", "127.0.0.1:9999",
		"-token-sign-key", "k",
		"-token-issuer", "iss",
		"-token-duration", "2h",
		"-seed-peer", "0xa",
		"-seed-peer", "0xb,0xc",
		"-metrics-address", ":9100",
		"-log-file", "client.log",
		"-c", "cfg.json",
	}

	// Act
	cfg, err := parseFlags(args)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Network.Env)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Network.GatewayAddress)
	assert.Equal(t, 3*time.Second, cfg.Network.RequestTimeout)
	assert.InDelta(t, 7.0, cfg.Network.RateLimit, 0.0001)
	assert.Equal(t, 2, cfg.Network.RateBurst)
	assert.Equal(t, "acme/", cfg.Session.NamespacePrefix)
	assert.Equal(t, 8, cfg.Session.FetchConcurrency)
	assert.Equal(t, time.Second, cfg.Session.StreamRetryInterval)
	assert.Equal(t, "/keys/wallet.hex", cfg.Wallet.KeyFile)
	assert.Equal(t, "127.0.0.1:9999", cfg.Devnet.Address)
	assert.Equal(t, "k", cfg.Devnet.TokenSignKey)
	assert.Equal(t, "iss", cfg.Devnet.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.Devnet.TokenDuration)
	assert.Equal(t, []string{"0xa", "0xb", "0xc"}, cfg.Devnet.SeedPeers)
	assert.Equal(t, ":9100", cfg.Metrics.Address)
	assert.Equal(t, "client.log", cfg.Log.File)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	cfg, err := parseFlags([]string{"-unknown"})

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nope"})

	require.Error(t, err)
}
