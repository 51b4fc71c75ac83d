package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/vibe-english-platform/vocabcli/internal/entity"
)

// Credentials are the register/login inputs.
type Credentials struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, creds Credentials) (*entity.User, error) {
	return c.authenticate(ctx, "/users/register", creds)
}

// Login exchanges credentials for a bearer token, persisting it with the
// store's 7-day lifetime.
func (c *Client) Login(ctx context.Context, creds Credentials) (*entity.User, error) {
	return c.authenticate(ctx, "/users/login", creds)
}

func (c *Client) authenticate(ctx context.Context, path string, creds Credentials) (*entity.User, error) {
	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return nil, fmt.Errorf("%s: email and password are required", path)
	}
	var out authResponse
	if err := c.do(ctx, http.MethodPost, path, creds, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, &DecodeError{Endpoint: "POST " + path, Err: fmt.Errorf("response missing token")}
	}
	if err := c.tokens.Save(out.Token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	return &out.User, nil
}

// Profile loads the authenticated user, owned collections included.
func (c *Client) Profile(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NotifyWordLearned reports a completed learn-flow word. Best-effort
// background sync: callers log failures instead of surfacing them.
func (c *Client) NotifyWordLearned(ctx context.Context, word string) error {
	body := map[string]string{"word": word}
	return c.do(ctx, http.MethodPost, "/users/learn", body, nil)
}
