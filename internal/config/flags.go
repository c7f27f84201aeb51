package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

// parseFlags parses the command-line arguments shared by both binaries.
//
// Flags:
//
//	-env network environment (local, dev, production)
//	-gateway network gateway base URL
//	-request-timeout gateway request timeout (e.g. "15s")
//	-rate-limit gateway requests per second
//	-rate-burst gateway request burst
//	-namespace conversation namespace prefix
//	-fetch-concurrency parallel message fetches (0 = unbounded)
//	-stream-retry pause before re-opening a dropped stream
//	-wallet-key hex-encoded wallet private key
//	-wallet-key-file path to a file with the wallet private key
//	-a devnet listen address in format [host]:[port]
//	-token-sign-key devnet token signing key
//	-token-issuer devnet token issuer
//	-token-duration devnet token lifetime
//	-seed-peer devnet demo peer address (repeatable)
//	-seed-namespace devnet demo conversation namespace
//	-metrics-address prometheus listen address
//	-log-file client log file
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		devnetAddress NetAddress
		seedPeers     stringList
		cfg           StructuredConfig
	)

	fs := flag.NewFlagSet("indie-chat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Network.Env, "env", "", "Network environment (local, dev, production)")
	fs.StringVar(&cfg.Network.GatewayAddress, "gateway", "", "Network gateway base URL")
	fs.DurationVar(&cfg.Network.RequestTimeout, "request-timeout", 0, "Gateway request timeout (e.g., 15s)")
	fs.Float64Var(&cfg.Network.RateLimit, "rate-limit", 0, "Gateway requests per second")
	fs.IntVar(&cfg.Network.RateBurst, "rate-burst", 0, "Gateway request burst")
	fs.StringVar(&cfg.Session.NamespacePrefix, "namespace", "", "Conversation namespace prefix")
	fs.IntVar(&cfg.Session.FetchConcurrency, "fetch-concurrency", 0, "Parallel message fetches (0 = unbounded)")
	fs.DurationVar(&cfg.Session.StreamRetryInterval, "stream-retry", 0, "Pause before re-opening a dropped stream")
	fs.StringVar(&cfg.Wallet.PrivateKey, "wallet-key", "", "Hex-encoded wallet private key")
	fs.StringVar(&cfg.Wallet.KeyFile, "wallet-key-file", "", "Wallet private key file")
	fs.Var(&devnetAddress, "a", "Devnet net address host:port")
	fs.StringVar(&cfg.Devnet.TokenSignKey, "token-sign-key", "", "Devnet token signing key")
	fs.StringVar(&cfg.Devnet.TokenIssuer, "token-issuer", "", "Devnet token issuer")
	fs.DurationVar(&cfg.Devnet.TokenDuration, "token-duration", 0, "Devnet token duration (e.g., 24h)")
	fs.Var(&seedPeers, "seed-peer", "Devnet demo peer address (repeatable)")
	fs.StringVar(&cfg.Devnet.SeedNamespace, "seed-namespace", "", "Devnet demo conversation namespace")
	fs.StringVar(&cfg.Metrics.Address, "metrics-address", "", "Prometheus listen address")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Client log file")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Devnet.Address = devnetAddress.String()
	cfg.Devnet.SeedPeers = seedPeers

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
