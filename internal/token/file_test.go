package token

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "token.json"), 0)
}

func TestSaveAndToken(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("opaque-token"))

	tok, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "opaque-token", tok)
	assert.True(t, s.Authenticated())
}

func TestTokenExpiresAfterLifetime(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	s.clock = func() time.Time { return now }

	require.NoError(t, s.Save("opaque-token"))

	now = now.Add(DefaultLifetime + time.Minute)
	_, ok := s.Token()
	assert.False(t, ok)
	assert.False(t, s.Authenticated())
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("opaque-token"))

	require.NoError(t, s.Clear())

	assert.False(t, s.Authenticated())
	// Clearing again is a no-op.
	require.NoError(t, s.Clear())
}

func TestJWTExpiryTrimsLifetime(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	s.clock = func() time.Time { return now }

	// Unsigned JWT expiring in one hour, well inside the 7-day default.
	exp := now.Add(time.Hour)
	require.NoError(t, s.Save(unsignedJWT(t, exp)))

	_, ok := s.Token()
	require.True(t, ok)

	now = now.Add(2 * time.Hour)
	_, ok = s.Token()
	assert.False(t, ok, "token should follow the earlier JWT exp claim")
}

func TestMissingFile(t *testing.T) {
	s := newTestStore(t)
	_, ok := s.Token()
	assert.False(t, ok)
	assert.False(t, s.Authenticated())
}

func unsignedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	claims, err := json.Marshal(map[string]any{"sub": "u1", "exp": exp.Unix()})
	require.NoError(t, err)
	payload := base64.RawURLEncoding.EncodeToString(claims)
	return fmt.Sprintf("%s.%s.", header, payload)
}
