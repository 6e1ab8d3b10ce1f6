// Package transport provides the HTTP client used to talk to upstream
// mapping endpoints, with pluggable authentication and response decoding.
package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/strmsync/strmsync/pkg/constants"
	"github.com/strmsync/strmsync/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication.
type Client struct {
	http  *http.Client
	auth  Authenticator
	token string
}

// New creates a new transport client with the specified authenticator and token.
func New(auth Authenticator, token string) *Client {
	return &Client{
		http:  &http.Client{Timeout: DefaultHTTPTimeout},
		auth:  auth,
		token: token,
	}
}

// WithHTTPClient replaces the underlying http.Client. Useful for tests and
// callers that need custom transport settings.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.http = hc
	}
	return c
}

// Get performs an authenticated GET request. Only http and https URLs are
// accepted.
func (c *Client) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.WrapValidation("url", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &errors.ValidationError{
			Field:   "url",
			Value:   rawURL,
			Message: "scheme must be http or https",
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.WrapValidation("request", err)
	}

	c.auth.Apply(req, c.token)
	req.Header.Set("Accept", "application/json")

	return c.http.Do(req)
}

// DecodeMapping reads a response body and decodes it as a flat JSON object
// of string keys to string URLs. Non-2xx statuses and non-object bodies are
// surfaced as typed errors carrying the source name.
func DecodeMapping(resp *http.Response, source string) (map[string]string, error) {
	defer resp.Body.Close() //nolint:errcheck // read errors surface below

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseBody))
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &errors.APIError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Endpoint:   resp.Request.URL.Path,
		}
	}

	mapping := make(map[string]string)
	if err := json.Unmarshal(body, &mapping); err != nil {
		return nil, errors.WrapParse("json", source, err)
	}

	return mapping, nil
}
