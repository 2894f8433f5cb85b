// Package hrapi is the client for the upstream HR REST API and its message
// event stream.
package hrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/hr-gateway/internal/core/ports"
)

const maxErrorBody = 4 << 10

type ClientConfig struct {
	BaseURL      string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Client talks to the HR API on behalf of the employee whose token is in the
// request context.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	logger  *logrus.Logger
}

type Option func(*retryablehttp.Client)

// WithTransport sets the HTTP transport, mostly for tests.
func WithTransport(transport http.RoundTripper) Option {
	return func(client *retryablehttp.Client) {
		client.HTTPClient.Transport = transport
	}
}

// WithRetryPolicy replaces DefaultRetryPolicy.
func WithRetryPolicy(policy retryablehttp.CheckRetry) Option {
	return func(client *retryablehttp.Client) {
		client.CheckRetry = policy
	}
}

// NewClient builds a client that retries connection errors, 5xx (except 501)
// and 429 responses with exponential backoff, honouring Retry-After.
func NewClient(cfg *ClientConfig, logger *logrus.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logrus.New()
	}
	rc := retryablehttp.NewClient()
	rc.HTTPClient = cleanhttp.DefaultPooledClient()
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		rc.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		rc.RetryWaitMax = cfg.RetryWaitMax
	}
	rc.Logger = retryablehttp.LeveledLogger(leveledLogrus{inner: logger.WithField("subsystem", "hrapi")})
	rc.CheckRetry = DefaultRetryPolicy
	// hand the last response back so it can be turned into an APIError
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	for _, opt := range opts {
		opt(rc)
	}

	return &Client{baseURL: cfg.BaseURL, http: rc, logger: logger}
}

// DefaultRetryPolicy is retryablehttp.DefaultRetryPolicy minus retries on a
// cancelled or expired request context.
func DefaultRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// Ping checks that the HR API answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
	}

	// a []byte body can be replayed on retry
	var rawBody any
	if payload != nil {
		rawBody = payload
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, u, rawBody)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID, ok := RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"duration":   time.Since(start),
		"request_id": requestID,
	}).Debug("hr api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, path, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// leveledLogrus adapts logrus to retryablehttp.LeveledLogger. Intermediate
// errors are logged at warn level since the request is retried.
type leveledLogrus struct {
	inner *logrus.Entry
}

func (l leveledLogrus) Error(msg string, keysAndValues ...any) {
	l.inner.WithFields(toFields(keysAndValues)).Warn(msg)
}

func (l leveledLogrus) Warn(msg string, keysAndValues ...any) {
	l.inner.WithFields(toFields(keysAndValues)).Warn(msg)
}

func (l leveledLogrus) Info(msg string, keysAndValues ...any) {
	l.inner.WithFields(toFields(keysAndValues)).Info(msg)
}

func (l leveledLogrus) Debug(msg string, keysAndValues ...any) {
	l.inner.WithFields(toFields(keysAndValues)).Debug(msg)
}

func toFields(keysAndValues []any) logrus.Fields {
	fields := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}

var _ ports.HRClient = (*Client)(nil)
