package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidNetworkConfigs indicates invalid gateway settings (missing
	// address, unknown environment, non-positive timeout or rate).
	ErrInvalidNetworkConfigs = errors.New("invalid network configuration")
	// ErrInvalidSessionConfigs indicates invalid session engine settings
	// (empty namespace prefix, negative concurrency).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidWalletConfigs indicates that both a key and a key file were
	// given.
	ErrInvalidWalletConfigs = errors.New("invalid wallet configuration")
	// ErrInvalidDevnetConfigs indicates invalid development gateway settings
	// (missing address or token parameters).
	ErrInvalidDevnetConfigs = errors.New("invalid devnet configuration")
)
