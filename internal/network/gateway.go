package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/internal/crypto"
	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/metrics"
	"github.com/MKhiriev/go-indie-chat/internal/utils"
	"github.com/MKhiriev/go-indie-chat/internal/wallet"
	"github.com/MKhiriev/go-indie-chat/models"
)

// Gateway implements [Network] over the HTTP/WebSocket gateway API.
type Gateway struct {
	client   *utils.HTTPClient
	baseURL  string
	keychain crypto.KeyChainService
	metrics  *metrics.HTTP

	logger *logger.Logger
}

// NewGateway constructs a [Gateway] for the base URL in cfg. Requests are
// throttled to cfg.RateLimit per second with cfg.RateBurst burst and bounded
// by cfg.RequestTimeout. m may be nil.
//
// Returns an error if cfg.GatewayAddress is empty or cannot be parsed as a
// valid URL.
func NewGateway(cfg config.ClientNetwork, keychain crypto.KeyChainService, m *metrics.HTTP, log *logger.Logger) (*Gateway, error) {
	baseURL, err := normalizeBaseURL(cfg.GatewayAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway address: %w", err)
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	client := utils.NewHTTPClient(limiter)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &Gateway{
		client:   client,
		baseURL:  baseURL,
		keychain: keychain,
		metrics:  m,
		logger:   log.WithComponent("gateway"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", errors.New("missing host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// DeriveKeys implements [Network]. The wallet signs the key request of
// keychain; the signature is expanded into the identity keys.
func (g *Gateway) DeriveKeys(ctx context.Context, signer wallet.Signer, env models.Environment) (models.IdentityKeys, error) {
	address := signer.Address()
	signature, err := signer.SignMessage(ctx, g.keychain.KeyRequest(address, env))
	if err != nil {
		return models.IdentityKeys{}, fmt.Errorf("wallet refused key request: %w", err)
	}

	keys, err := g.keychain.DeriveIdentity(address, env, signature)
	if err != nil {
		return models.IdentityKeys{}, fmt.Errorf("derive identity: %w", err)
	}
	return keys, nil
}

// Create implements [Network]. It registers the installation and binds the
// returned bearer token to a new client.
func (g *Gateway) Create(ctx context.Context, keys models.IdentityKeys, env models.Environment) (Client, error) {
	proof, err := g.keychain.InstallationProof(keys)
	if err != nil {
		return nil, fmt.Errorf("installation proof: %w", err)
	}

	resp, err := g.request(ctx, env).
		SetHeader("Content-Type", "application/json").
		SetBody(InstallationRequest{
			Address:         keys.Address,
			PublicKey:       keys.PublicKey,
			WalletSignature: keys.WalletSignature,
			Proof:           proof,
		}).
		Post(RouteInstallations)
	g.observe(RouteInstallations, resp)
	if err != nil {
		return nil, fmt.Errorf("create installation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return nil, fmt.Errorf("create installation parse bearer token: %w", err)
	}
	address, err := utils.ParseAddressFromJWT(token)
	if err != nil {
		return nil, fmt.Errorf("create installation parse address: %w", err)
	}
	if !address.Equal(keys.Address) {
		return nil, ErrAddressMismatch
	}

	g.logger.Info().Str("address", address.String()).Str("env", string(env)).Msg("installation created")
	return &gatewayClient{gateway: g, address: address, env: env, token: token}, nil
}

// CanMessage implements [Network].
func (g *Gateway) CanMessage(ctx context.Context, address models.Address, env models.Environment) (bool, error) {
	resp, err := g.request(ctx, env).
		SetPathParam("address", address.String()).
		Get(RouteIdentity)
	g.observe(RouteIdentity, resp)
	if err != nil {
		return false, fmt.Errorf("identity lookup request: %w", err)
	}

	err = mapHTTPError(resp)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (g *Gateway) request(ctx context.Context, env models.Environment) *resty.Request {
	return g.client.R().
		SetContext(ctx).
		SetHeader(HeaderEnvironment, string(env))
}

func (g *Gateway) observe(route string, resp *resty.Response) {
	if resp == nil || resp.Request == nil {
		return
	}
	g.metrics.ObserveRequest(route, resp.Request.Method, resp.StatusCode(), resp.Time())
}

// gatewayClient is the [Client] returned by [Gateway.Create].
type gatewayClient struct {
	gateway *Gateway
	address models.Address
	env     models.Environment
	token   string
}

// Address implements [Client].
func (c *gatewayClient) Address() models.Address {
	return c.address
}

// ListConversations implements [Client]. Malformed entries are skipped.
func (c *gatewayClient) ListConversations(ctx context.Context) ([]Conversation, error) {
	resp, err := c.authedRequest(ctx).Get(RouteConversations)
	c.gateway.observe(RouteConversations, resp)
	if err != nil {
		return nil, fmt.Errorf("list conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var payloads []ConversationPayload
	if err = json.Unmarshal(resp.Body(), &payloads); err != nil {
		return nil, fmt.Errorf("decode conversations response: %w", err)
	}

	conversations := make([]Conversation, 0, len(payloads))
	for _, p := range payloads {
		info, err := p.Model()
		if err != nil {
			c.gateway.logger.Warn().Err(err).Str("topic", p.Topic).Msg("skipping malformed conversation")
			continue
		}
		conversations = append(conversations, &gatewayConversation{client: c, info: info})
	}
	return conversations, nil
}

func (c *gatewayClient) authedRequest(ctx context.Context) *resty.Request {
	return c.gateway.request(ctx, c.env).
		SetHeader("Authorization", "Bearer "+c.token)
}

// gatewayConversation is the [Conversation] handle of a gatewayClient.
type gatewayConversation struct {
	client *gatewayClient
	info   models.Conversation
}

// Info implements [Conversation].
func (c *gatewayConversation) Info() models.Conversation {
	return c.info.Clone()
}

// Messages implements [Conversation].
func (c *gatewayConversation) Messages(ctx context.Context) ([]models.RawMessage, error) {
	resp, err := c.client.authedRequest(ctx).
		SetPathParam("topic", c.info.Topic).
		Get(RouteMessages)
	c.client.gateway.observe(RouteMessages, resp)
	if err != nil {
		return nil, fmt.Errorf("messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var payloads []MessagePayload
	if err = json.Unmarshal(resp.Body(), &payloads); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}

	messages := make([]models.RawMessage, 0, len(payloads))
	for _, p := range payloads {
		messages = append(messages, p.Model())
	}
	return messages, nil
}
