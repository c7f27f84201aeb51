// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// Network holds the messaging network gateway settings.
	Network Network `envPrefix:"NETWORK_"`

	// Session holds settings of the session synchronization engine.
	Session Session `envPrefix:"SESSION_"`

	// Wallet holds the source of the wallet signing key.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Devnet holds settings of the local development gateway.
	Devnet Devnet `envPrefix:"DEVNET_"`

	// Metrics holds the prometheus exposition endpoint.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Log holds logging destinations.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Network configures how the client reaches the messaging network.
type Network struct {
	// Env selects the network deployment: local, dev or production.
	// Env: NETWORK_ENV
	Env string `env:"ENV" envDefault:"dev"`

	// GatewayAddress is the base URL of the network gateway
	// (e.g. "http://localhost:8080").
	// Env: NETWORK_GATEWAY_ADDRESS
	GatewayAddress string `env:"GATEWAY_ADDRESS" envDefault:"http://localhost:8080"`

	// RequestTimeout bounds a single gateway request.
	// Env: NETWORK_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	// RateLimit is the sustained request rate towards the gateway, in
	// requests per second.
	// Env: NETWORK_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"20"`

	// RateBurst is the token bucket size for RateLimit.
	// Env: NETWORK_RATE_BURST
	RateBurst int `env:"RATE_BURST" envDefault:"10"`
}

// Session configures the session synchronization engine.
type Session struct {
	// NamespacePrefix is the reserved prefix of this application's
	// conversation identifiers.
	// Env: SESSION_NAMESPACE_PREFIX
	NamespacePrefix string `env:"NAMESPACE_PREFIX" envDefault:"indie-talent/"`

	// FetchConcurrency caps parallel message fetches; 0 means unbounded.
	// Env: SESSION_FETCH_CONCURRENCY
	FetchConcurrency int `env:"FETCH_CONCURRENCY"`

	// StreamRetryInterval is the pause before re-opening a dropped
	// conversation stream.
	// Env: SESSION_STREAM_RETRY_INTERVAL
	StreamRetryInterval time.Duration `env:"STREAM_RETRY_INTERVAL" envDefault:"5s"`
}

// Wallet selects where the wallet private key comes from. When both fields
// are empty the client generates an ephemeral wallet.
type Wallet struct {
	// PrivateKey is a hex-encoded secp256k1 private key.
	// Env: WALLET_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`

	// KeyFile is a path to a file holding a hex-encoded private key.
	// Env: WALLET_KEY_FILE
	KeyFile string `env:"KEY_FILE"`
}

// Devnet configures the local development gateway.
type Devnet struct {
	// Address is the TCP address the gateway listens on, "host:port".
	// Env: DEVNET_ADDRESS
	Address string `env:"ADDRESS" envDefault:"localhost:8080"`

	// TokenSignKey signs installation tokens (HS256).
	// Env: DEVNET_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of installation tokens.
	// Env: DEVNET_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"indie-devnet"`

	// TokenDuration is the lifetime of installation tokens.
	// Env: DEVNET_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`

	// SeedPeers lists wallet addresses for which demo conversations are
	// created with every newly provisioned identity.
	// Env: DEVNET_SEED_PEERS (comma separated)
	SeedPeers []string `env:"SEED_PEERS" envSeparator:","`

	// SeedNamespace prefixes the conversation IDs of demo conversations.
	// Env: DEVNET_SEED_NAMESPACE
	SeedNamespace string `env:"SEED_NAMESPACE" envDefault:"indie-talent/"`
}

// Metrics configures the prometheus endpoint. Empty Address disables it.
type Metrics struct {
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Log configures log destinations.
type Log struct {
	// File is where the terminal client appends its logs.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. args are the command-line arguments without the program
// name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
