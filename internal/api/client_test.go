package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibe-english-platform/vocabcli/internal/cache"
	"github.com/vibe-english-platform/vocabcli/internal/entity"
	"github.com/vibe-english-platform/vocabcli/internal/token"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *token.MemoryStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := token.NewMemoryStore()
	c := New(srv.URL, tokens, cache.New(0))
	return c, tokens, srv
}

func TestBearerTokenInjected(t *testing.T) {
	var gotAuth string
	c, tokens, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":"u1","email":"a@b.c","username":"amy","preferences":{},"progress":{},"created_at":"2026-01-02T00:00:00Z"}`))
	}))
	require.NoError(t, tokens.Save("tok-123"))

	_, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestUnauthorizedClearsToken(t *testing.T) {
	c, tokens, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	require.NoError(t, tokens.Save("stale-token"))

	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, entity.ErrAuthRequired)
	assert.False(t, c.Authenticated(), "401 must clear the stored token")
}

func TestQuotaExceeded(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := c.LookupEnhanced(context.Background(), "ambitious")
	require.ErrorIs(t, err, entity.ErrQuotaExceeded)
}

func TestStatusErrorCarriesBackendMessage(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"analysis pipeline unavailable"}`))
	}))

	_, err := c.Profile(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Status)
	assert.Equal(t, "analysis pipeline unavailable", se.Message)
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	tokens := token.NewMemoryStore()
	c := New(srv.URL, tokens, cache.New(0))
	srv.Close()

	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, entity.ErrNetwork)
}

func TestEmptyBodyIsSuccess(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	err := c.NotifyWordLearned(context.Background(), "ambitious")
	require.NoError(t, err)
}

func TestMalformedPayloadFailsFast(t *testing.T) {
	// 200 with a JSON body that decodes but fails boundary validation.
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"word":"ambitious","meanings":[]}`))
	}))

	_, err := c.LookupMeanings(context.Background(), "ambitious")
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestLookupMeaningsNotFound(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"word not found"}`))
	}))

	_, err := c.LookupMeanings(context.Background(), "qwzx")
	require.ErrorIs(t, err, entity.ErrWordNotFound)
}

const enhancedBody = `{"word":"ambitious","phonetic":"æmˈbɪʃəs","meanings":[{"part_of_speech":"adj","definition":"having a strong desire for success"}]}`

func TestLookupEnhancedUsesCacheWithinTTL(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(enhancedBody))
	}))
	t.Cleanup(srv.Close)

	now := time.Now()
	words := cache.New(30 * time.Minute).WithClock(func() time.Time { return now })
	c := New(srv.URL, token.NewMemoryStore(), words)

	first, err := c.LookupEnhanced(context.Background(), "Ambitious")
	require.NoError(t, err)
	second, err := c.LookupEnhanced(context.Background(), "ambitious")
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load(), "second lookup within TTL must not hit the network")
	assert.Equal(t, first, second)

	now = now.Add(31 * time.Minute)
	_, err = c.LookupEnhanced(context.Background(), "ambitious")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "expired entry must trigger a fresh call")
}

func TestLookupEnhancedQuotaServesStaleCache(t *testing.T) {
	var quota atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if quota.Load() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(enhancedBody))
	}))
	t.Cleanup(srv.Close)

	now := time.Now()
	words := cache.New(30 * time.Minute).WithClock(func() time.Time { return now })
	c := New(srv.URL, token.NewMemoryStore(), words)

	_, err := c.LookupEnhanced(context.Background(), "ambitious")
	require.NoError(t, err)

	quota.Store(true)
	now = now.Add(time.Hour) // entry is stale, fresh path misses

	got, err := c.LookupEnhanced(context.Background(), "ambitious")
	require.NoError(t, err, "stale cache should serve as the degraded answer")
	assert.Equal(t, "ambitious", got.Text)
}

func TestLoginStoresToken(t *testing.T) {
	c, tokens, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"fresh-token","user":{"id":"u1","email":"a@b.c","username":"amy","preferences":{},"progress":{},"created_at":"2026-01-02T00:00:00Z"}}`))
	}))

	user, err := c.Login(context.Background(), Credentials{Email: "a@b.c", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "amy", user.Username)

	tok, ok := tokens.Token()
	require.True(t, ok)
	assert.Equal(t, "fresh-token", tok)
}

func TestCancelledContext(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Profile(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrNetwork) || errors.Is(err, context.Canceled))
}
