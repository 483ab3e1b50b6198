// Package http provides a configurable HTTP client with retry logic for
// talking to chain nodes. It wraps the retryablehttp.Client from HashiCorp and
// exposes functional options for customizing timeouts and retry behavior.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gabapcia/photonscan/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultUserAgent is sent with every request unless WithUserAgent overrides it.
const DefaultUserAgent = "photonscan/1.0"

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retry attempts
	userAgent    string
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// leveledLogger forwards retryablehttp diagnostics to the application logger.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, kv ...any) { logger.Error(context.Background(), msg, kv...) }
func (leveledLogger) Warn(msg string, kv ...any)  { logger.Warn(context.Background(), msg, kv...) }
func (leveledLogger) Info(msg string, kv ...any)  { logger.Debug(context.Background(), msg, kv...) }
func (leveledLogger) Debug(msg string, kv ...any) { logger.Debug(context.Background(), msg, kv...) }

// userAgentTransport sets the User-Agent header on outgoing requests.
type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(req)
}

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, default values are used:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//   - userAgent:    DefaultUserAgent
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
		userAgent:    DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{}
	client.HTTPClient.Timeout = cfg.timeout
	client.HTTPClient.Transport = userAgentTransport{
		next:      client.HTTPClient.Transport,
		userAgent: cfg.userAgent,
	}
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}
