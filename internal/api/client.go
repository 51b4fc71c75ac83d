// Package api is the sole network boundary of the client. It exposes one
// method per backend endpoint, injects the bearer token, and maps failures
// onto the shared error taxonomy: entity.ErrAuthRequired (401, token cleared
// as a side effect), entity.ErrQuotaExceeded (429), *StatusError for other
// non-2xx, and entity.ErrNetwork for transport failures. There are no
// retries; callers decide fallback.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vibe-english-platform/vocabcli/internal/cache"
	"github.com/vibe-english-platform/vocabcli/internal/entity"
	"github.com/vibe-english-platform/vocabcli/internal/token"
)

// Client issues JSON-over-HTTP calls against the backend's /api base path.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  token.Store
	words   *cache.WordCache
	logger  logrus.FieldLogger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport. The default client has
// no timeout, matching the original's bare fetch; wire one here via config
// if a deadline is wanted.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger replaces the default logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.logger = l }
}

// New builds a client. tokens and words are injected so tests can substitute
// fakes; both are required.
func New(baseURL string, tokens token.Store, words *cache.WordCache, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		words:   words,
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticated reports whether a usable token is stored.
func (c *Client) Authenticated() bool {
	return c.tokens.Authenticated()
}

// Logout drops the stored token. Purely client-side; the backend keeps no
// session state beyond the token itself.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// validator lets response types opt into boundary validation.
type validator interface {
	Validate() error
}

// do performs one request. in is JSON-encoded when non-nil; out is filled
// from the body when non-nil and the response carries JSON. Empty or
// non-JSON 2xx bodies count as empty success.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	endpoint := method + " " + path

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", endpoint, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", endpoint, entity.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapFailure(endpoint, resp)
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", endpoint, entity.ErrNetwork, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Non-JSON success bodies are treated as empty success.
		if !looksLikeJSON(data) {
			return nil
		}
		return &DecodeError{Endpoint: endpoint, Err: err}
	}
	if v, ok := out.(validator); ok {
		if err := v.Validate(); err != nil {
			return &DecodeError{Endpoint: endpoint, Err: err}
		}
	}
	return nil
}

func (c *Client) mapFailure(endpoint string, resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// The stored token is dead; drop it before propagating so the next
		// Authenticated() call answers false.
		if err := c.tokens.Clear(); err != nil {
			c.logger.WithError(err).Warn("clear token after 401")
		}
		return fmt.Errorf("%s: %w", endpoint, entity.ErrAuthRequired)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", endpoint, entity.ErrQuotaExceeded)
	}

	msg := decodeErrorMessage(resp.Body)
	return fmt.Errorf("%s: %w", endpoint, &StatusError{Status: resp.StatusCode, Message: msg})
}

// decodeErrorMessage pulls the message field out of the backend's JSON error
// shape, tolerating empty and non-JSON bodies.
func decodeErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 1<<16))
	if err != nil {
		return ""
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Error)
}

func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return false
	}
	switch trimmed[0] {
	case '{', '[', '"', 't', 'f', 'n', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return false
}
