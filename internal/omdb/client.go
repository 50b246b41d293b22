// Package omdb looks up movie metadata by title on the OMDb API.
package omdb

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lepinkainen/movieinfo/internal/errors"
	"github.com/lepinkainen/movieinfo/internal/ratelimit"
)

const (
	// DefaultBaseURL is the public OMDb endpoint.
	DefaultBaseURL = "http://www.omdbapi.com"

	defaultTimeout       = 10 * time.Second
	defaultRatePerSecond = 1 // free tier is 1000 requests/day
	maxBodyBytes         = 1 << 20
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an OMDb API client.
type Client struct {
	apiKey      string
	baseURL     string
	httpClient  HTTPDoer
	rateLimiter *ratelimit.Limiter
}

// NewClient creates a new OMDb client using apiKey for every request.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:      apiKey,
		baseURL:     DefaultBaseURL,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		rateLimiter: ratelimit.New("OMDB", defaultRatePerSecond),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the OMDb API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithRateLimiter sets the limiter waited on before each request.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.rateLimiter = limiter
		}
	}
}

// SearchURL returns the request URL for title.
func (c *Client) SearchURL(title string) string {
	params := url.Values{}
	params.Set("t", title)
	params.Set("apikey", c.apiKey)
	return c.baseURL + "/?" + params.Encode()
}

// Search looks up a single title.
//
// An empty title fails with a ValidationError without touching the network.
// Transport failures and undecodable bodies are TransportErrors; a reply
// reporting no match is a NotFoundError.
func (c *Client) Search(ctx context.Context, title string) (Fields, error) {
	title, err := ValidateTitle(title)
	if err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, errors.NewTransportError("omdb search", err)
	}

	slog.Debug("Fetching OMDB data by title", "title", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL(title), nil)
	if err != nil {
		return nil, errors.NewTransportError("omdb search", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError("omdb search", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Debug("OMDB returned non-2xx status", "title", title, "status", resp.StatusCode)
		return nil, errors.NewStatusError("omdb search", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.NewTransportError("omdb search", err)
	}

	fields, err := interpret(title, body)
	if err != nil {
		slog.Debug("OMDB search did not produce fields", "title", title, "error", err)
		return nil, err
	}

	slog.Debug("OMDB search matched", "title", title, "match", fields.Get(KeyTitle))
	return fields, nil
}

// ValidateTitle trims title and rejects it when nothing is left.
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errors.NewValidationError("title", "please input a movie title")
	}
	return title, nil
}
