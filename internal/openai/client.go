// Package openai is a minimal client for the model-listing endpoint of an
// OpenAI-compatible API. It covers exactly one call: an authenticated GET
// against /models, with no retries, pagination, or streaming.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"resty.dev/v3"

	"github.com/vk/modelcheck/internal/ctxlog"
)

const (
	// DefaultBaseURL is the production OpenAI API root.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout bounds the single outbound request.
	DefaultTimeout = 30 * time.Second

	// EnvAPIKey is the environment variable holding the bearer credential.
	EnvAPIKey = "OPENAI_API_KEY"
)

// ErrMissingCredential is returned when no usable API key could be resolved.
var ErrMissingCredential = errors.New("OPENAI_API_KEY not found in environment or .env")

// NetworkError wraps a transport-level failure (connection refused, DNS,
// timeout). The request never produced an HTTP response.
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface for NetworkError.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RemoteError reports a non-200 response. Body carries the raw response
// payload so the caller can surface the server's own diagnostics.
type RemoteError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface for RemoteError.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("error %d from remote:\n%s", e.StatusCode, e.Body)
}

// Client issues authenticated requests against one API root.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *resty.Client
}

// Option customizes a Client during construction.
type Option func(*Client)

// WithBaseURL points the client at a different API root, e.g. a local
// OpenAI-compatible gateway. A trailing slash is tolerated.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = strings.TrimRight(url, "/")
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient builds a Client for the given bearer credential. The caller
// should Close it when done.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http = resty.New().
		SetAuthToken(apiKey).
		SetTimeout(c.timeout)

	return c
}

// Close releases the underlying transport resources.
func (c *Client) Close() {
	c.http.Close()
}

// ListModels fetches the model listing and returns the non-empty `id` fields
// of the entries under `data`, in server order. Entries without an id are
// skipped.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	url := c.baseURL + "/models"
	logger.Debug("Requesting model list.", "url", url, "timeout", c.timeout)

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	logger.Debug("Received model list response.", "status", res.StatusCode())

	if res.StatusCode() != http.StatusOK {
		return nil, &RemoteError{StatusCode: res.StatusCode(), Body: res.String()}
	}

	body := res.Bytes()
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("malformed JSON response from %s", url)
	}

	var ids []string
	for _, entry := range gjson.GetBytes(body, "data").Array() {
		if id := entry.Get("id").String(); id != "" {
			ids = append(ids, id)
		}
	}

	logger.Debug("Model list parsed.", "count", len(ids))
	return ids, nil
}
