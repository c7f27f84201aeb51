package utils

import (
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly, and
// optionally throttles outgoing requests with a token bucket.
//
// Example usage:
//
//	client := utils.NewHTTPClient(rate.NewLimiter(20, 10))
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
	limiter *rate.Limiter
}

// NewHTTPClient creates a new HTTPClient. When limiter is non-nil every
// request waits for a token, honouring the request context.
func NewHTTPClient(limiter *rate.Limiter) *HTTPClient {
	client := &HTTPClient{Client: resty.New(), limiter: limiter}
	if limiter != nil {
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})
	}
	return client
}

// Limiter returns the limiter the client throttles with, or nil.
func (c *HTTPClient) Limiter() *rate.Limiter {
	return c.limiter
}
