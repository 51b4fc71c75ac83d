// Package token persists the bearer token between client invocations. It is
// the CLI counterpart of the browser client's auth cookie: same 7-day
// lifetime, cleared whenever the backend answers 401.
package token

// Store holds the bearer token for the API client.
type Store interface {
	// Save persists the token with the store's default lifetime.
	Save(token string) error
	// Token returns the current token, if one is present and unexpired.
	Token() (string, bool)
	// Clear removes the token. Clearing an empty store is a no-op.
	Clear() error
	// Authenticated reports whether an unexpired token is present.
	Authenticated() bool
}
