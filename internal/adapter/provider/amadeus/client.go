// Package amadeus implements domain.FlightDataProvider against the Amadeus Self-Service API.
package amadeus

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/flight-search/flight-reservations/internal/domain"
	"github.com/flight-search/flight-reservations/internal/infrastructure/retry"
)

// ProviderName identifies this provider in logs.
const ProviderName = "amadeus"

// TokenPath is the OAuth2 token endpoint relative to the base URL.
const TokenPath = "/v1/security/oauth2/token"

// Config holds the client settings.
type Config struct {
	BaseURL      string
	APIKey       string
	APISecret    string
	Timeout      time.Duration
	RateLimitRPS float64
	MaxAttempts  int
}

// Client is an Amadeus API client. It is safe for concurrent use.
// Access tokens are fetched on first use and refreshed when they expire.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
	retry      retry.Config
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithRetryConfig overrides the backoff used for idempotent calls.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithLimiter replaces the outbound rate limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// NewClient creates a client authenticating with OAuth2 client credentials.
func NewClient(cfg Config, logger zerolog.Logger, opts ...Option) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	credentials := &clientcredentials.Config{
		ClientID:     strings.TrimSpace(cfg.APIKey),
		ClientSecret: strings.TrimSpace(cfg.APISecret),
		TokenURL:     baseURL + TokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	transport := &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
		Timeout:   cfg.Timeout,
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, transport)

	limit := rate.Inf
	if cfg.RateLimitRPS > 0 {
		limit = rate.Limit(cfg.RateLimitRPS)
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: credentials.Client(tokenCtx),
		limiter:    rate.NewLimiter(limit, 1),
		timeout:    cfg.Timeout,
		retry:      retry.ProviderConfig(cfg.MaxAttempts),
		logger:     logger.With().Str("provider", ProviderName).Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call describes one provider request.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   []byte
	// idempotent calls may be retried on transient failures.
	idempotent bool
}

// do executes a call and returns the response body. Responses with status >= 400
// are returned as *domain.ProviderError.
func (c *Client) do(ctx context.Context, req call) ([]byte, error) {
	cfg := c.retry
	if !req.idempotent {
		cfg.MaxAttempts = 1
	}

	start := time.Now()
	body, err := retry.Do(ctx, cfg, func(ctx context.Context) ([]byte, error) {
		return c.send(ctx, req)
	})
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("op", req.op).
			Dur("duration", time.Since(start)).
			Msg("provider call failed")
		return nil, err
	}

	c.logger.Debug().
		Str("op", req.op).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("provider call completed")
	return body, nil
}

func (c *Client) send(ctx context.Context, req call) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var reader io.Reader
	if req.body != nil {
		reader = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", req.op, err)
	}
	httpReq.Header.Set("Accept", "application/vnd.amadeus+json, application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/vnd.amadeus+json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if pe := tokenError(err); pe != nil {
			return nil, pe
		}
		return nil, fmt.Errorf("%s request: %w", req.op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", req.op, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeError(resp.StatusCode, body)
	}
	return bytes.TrimSpace(body), nil
}

// decodeError converts an Amadeus error body into a ProviderError.
// The first entry of {"errors":[{status,code,title,detail}]} supplies the message.
func decodeError(statusCode int, body []byte) *domain.ProviderError {
	var message string
	if gjson.ValidBytes(body) {
		first := gjson.GetBytes(body, "errors.0")
		message = joinNonEmpty(first.Get("title").String(), first.Get("detail").String())
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return domain.NewProviderError(statusCode, message)
}

// tokenError maps a failed token exchange to a ProviderError.
func tokenError(err error) *domain.ProviderError {
	var re *oauth2.RetrieveError
	if !errors.As(err, &re) || re.Response == nil {
		return nil
	}
	pe := decodeError(re.Response.StatusCode, re.Body)
	if re.ErrorDescription != "" {
		pe.Message = re.ErrorDescription
	}
	return pe
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ": ")
}
