// Package transport is the HTTP plumbing shared by the remote data sources.
// Requests carry the caller's context and no client-side timeout: a run is
// cancelled only by the process signal context.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/logging"
)

// Client performs authenticated GET requests against one source.
type Client struct {
	source string
	http   *http.Client
	auth   Authenticator
	apiKey string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithAPIKey sets the credential passed to the Authenticator.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// New creates a client for the named source.
func New(source string, auth Authenticator, opts ...Option) *Client {
	if auth == nil {
		auth = &NoAuth{}
	}
	c := &Client{
		source: source,
		http:   &http.Client{},
		auth:   auth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Source returns the source name used in errors.
func (c *Client) Source() string {
	return c.source
}

// Get performs a GET request. The caller owns the response body.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	c.auth.Apply(req, c.apiKey)
	req.Header.Set("Accept", "application/json")

	logging.FromContext(ctx).Debug().
		Str("source", c.source).
		Str("url", url).
		Msg("HTTP request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapAPI(c.source, url, err)
	}
	return resp, nil
}

// GetBytes performs a GET request and returns the body of a 2xx response.
// Transport failures and non-2xx statuses are *errors.APIError.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return ReadResponse(resp, c.source, url)
}

// GetJSON performs a GET request and decodes a 2xx JSON body into target.
func (c *Client) GetJSON(ctx context.Context, url string, target any) error {
	body, err := c.GetBytes(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", url, err)
	}
	return nil
}

// ReadResponse drains and closes resp, returning the body of a 2xx response.
func ReadResponse(resp *http.Response, source, endpoint string) ([]byte, error) {
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errors.APIError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    truncate(string(body), 512),
		}
	}
	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s... (%d bytes)", s[:n], len(s))
}
