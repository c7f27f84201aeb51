package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and string
// durations.
type StructuredJSONConfig struct {
	Network struct {
		Env            string   `json:"env"`
		GatewayAddress string   `json:"gateway_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"network,omitempty"`

	Session struct {
		NamespacePrefix     string   `json:"namespace_prefix"`
		FetchConcurrency    int      `json:"fetch_concurrency"`
		StreamRetryInterval Duration `json:"stream_retry_interval"`
	} `json:"session,omitempty"`

	Wallet struct {
		PrivateKey string `json:"private_key"`
		KeyFile    string `json:"key_file"`
	} `json:"wallet,omitempty"`

	Devnet struct {
		Address       string   `json:"address"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		SeedPeers     []string `json:"seed_peers"`
		SeedNamespace string   `json:"seed_namespace"`
	} `json:"devnet,omitempty"`

	Metrics struct {
		Address string `json:"address"`
	} `json:"metrics,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Network: Network{
			Env:            jsonCfg.Network.Env,
			GatewayAddress: jsonCfg.Network.GatewayAddress,
			RequestTimeout: time.Duration(jsonCfg.Network.RequestTimeout),
			RateLimit:      jsonCfg.Network.RateLimit,
			RateBurst:      jsonCfg.Network.RateBurst,
		},
		Session: Session{
			NamespacePrefix:     jsonCfg.Session.NamespacePrefix,
			FetchConcurrency:    jsonCfg.Session.FetchConcurrency,
			StreamRetryInterval: time.Duration(jsonCfg.Session.StreamRetryInterval),
		},
		Wallet: Wallet{
			PrivateKey: jsonCfg.Wallet.PrivateKey,
			KeyFile:    jsonCfg.Wallet.KeyFile,
		},
		Devnet: Devnet{
			Address:       jsonCfg.Devnet.Address,
			TokenSignKey:  jsonCfg.Devnet.TokenSignKey,
			TokenIssuer:   jsonCfg.Devnet.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Devnet.TokenDuration),
			SeedPeers:     jsonCfg.Devnet.SeedPeers,
			SeedNamespace: jsonCfg.Devnet.SeedNamespace,
		},
		Metrics: Metrics{Address: jsonCfg.Metrics.Address},
		Log:     Log{File: jsonCfg.Log.File},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
