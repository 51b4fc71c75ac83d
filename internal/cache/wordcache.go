// Package cache holds the in-process word-lookup cache. Entries stay fresh
// for 30 minutes, matching how long the backend considers an enhanced
// analysis stable; on quota exhaustion a fresh entry doubles as the fallback.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/vibe-english-platform/vocabcli/internal/entity"
)

// DefaultTTL is the freshness window for cached lookups.
const DefaultTTL = 30 * time.Minute

type cacheEntry struct {
	word      *entity.Word
	fetchedAt time.Time
}

// WordCache maps lowercased search terms to their last enhanced lookup.
// Safe for concurrent use; the clock is injectable for tests.
type WordCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   func() time.Time
	entries map[string]cacheEntry
}

// New returns a cache with the given TTL; non-positive falls back to DefaultTTL.
func New(ttl time.Duration) *WordCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &WordCache{
		ttl:     ttl,
		clock:   time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// WithClock replaces the time source. Test hook.
func (c *WordCache) WithClock(clock func() time.Time) *WordCache {
	c.clock = clock
	return c
}

// Get returns the cached word for the term if its entry is still fresh.
func (c *WordCache) Get(term string) (*entity.Word, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[normalize(term)]
	if !ok || c.clock().Sub(e.fetchedAt) > c.ttl {
		return nil, false
	}
	return e.word, true
}

// GetAny returns the cached word regardless of freshness. Used as the
// degraded answer when the lookup quota is exhausted.
func (c *WordCache) GetAny(term string) (*entity.Word, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[normalize(term)]
	if !ok {
		return nil, false
	}
	return e.word, true
}

// Put stores the lookup result under the lowercased term.
func (c *WordCache) Put(term string, w *entity.Word) {
	if w == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[normalize(term)] = cacheEntry{word: w, fetchedAt: c.clock()}
}

// Len reports the number of entries, stale ones included.
func (c *WordCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
