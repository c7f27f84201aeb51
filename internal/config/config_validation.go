// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Network.GatewayAddress == "" || cfg.Network.RequestTimeout <= 0 ||
		cfg.Network.RateLimit <= 0 || cfg.Network.RateBurst <= 0 {
		return ErrInvalidNetworkConfigs
	}

	if strings.TrimSpace(cfg.Session.NamespacePrefix) == "" ||
		cfg.Session.FetchConcurrency < 0 || cfg.Session.StreamRetryInterval <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Wallet.PrivateKey != "" && cfg.Wallet.KeyFile != "" {
		return ErrInvalidWalletConfigs
	}

	return nil
}

func (cfg *DevnetConfig) validate() error {
	if cfg.Address == "" || cfg.TokenIssuer == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidDevnetConfigs
	}

	for _, peer := range cfg.SeedPeers {
		if strings.TrimSpace(peer) == "" {
			return ErrInvalidDevnetConfigs
		}
	}

	return nil
}
