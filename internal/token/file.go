package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLifetime matches the auth cookie's Max-Age on the web client.
const DefaultLifetime = 7 * 24 * time.Hour

type fileRecord struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FileStore keeps the token in a mode-0600 JSON file.
type FileStore struct {
	path     string
	lifetime time.Duration
	clock    func() time.Time
}

// NewFileStore returns a store backed by the given path. A zero lifetime
// falls back to DefaultLifetime.
func NewFileStore(path string, lifetime time.Duration) *FileStore {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &FileStore{path: path, lifetime: lifetime, clock: time.Now}
}

func (s *FileStore) Save(tok string) error {
	if tok == "" {
		return errors.New("empty token")
	}
	now := s.clock()
	rec := fileRecord{Token: tok, ExpiresAt: now.Add(s.lifetime)}
	// If the token itself is a JWT expiring sooner, trust the claim. The
	// parse is unverified: expiry here is a UX concern, the server always
	// re-validates.
	if exp, ok := jwtExpiry(tok); ok && exp.Before(rec.ExpiresAt) {
		rec.ExpiresAt = exp
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode token record: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (s *FileStore) Token() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", false
	}
	if rec.Token == "" || !rec.ExpiresAt.After(s.clock()) {
		return "", false
	}
	return rec.Token, true
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

func (s *FileStore) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

func jwtExpiry(tok string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
