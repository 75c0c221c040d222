// Package cache holds the single-entry result cache used for per-viewer
// views that are expensive to rebuild from the chain.
package cache

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// DefaultTTL is how long a stored entry stays valid.
const DefaultTTL = 5 * time.Minute

// Storage is a string key-value store. Implementations must be safe for
// concurrent use.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Clock returns the current time.
type Clock func() time.Time

type entry[T any] struct {
	ViewerID  string `json:"viewer_id"`
	Timestamp int64  `json:"timestamp"`
	Data      T      `json:"data"`
}

// ResultCache keeps at most one entry under a fixed storage key. An entry is
// served only to the viewer it was stored for and only while it is younger
// than the TTL. Anything else, including unreadable storage, is a miss and
// clears the key.
type ResultCache[T any] struct {
	mu      sync.Mutex
	key     string
	ttl     time.Duration
	now     Clock
	storage Storage
	logger  *slog.Logger
}

// New creates a cache over storage. A zero ttl uses DefaultTTL and a nil
// clock uses time.Now.
func New[T any](storage Storage, key string, ttl time.Duration, now Clock, logger *slog.Logger) *ResultCache[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ResultCache[T]{
		key:     key,
		ttl:     ttl,
		now:     now,
		storage: storage,
		logger:  logger.With(slog.String("cache", key)),
	}
}

// Get returns the cached data for viewerID when present and fresh.
func (c *ResultCache[T]) Get(viewerID string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	raw, ok, err := c.storage.Get(c.key)
	if err != nil {
		c.logger.Warn("cache read failed", slog.Any("error", err))
		c.clear()
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var e entry[T]
	if err = json.Unmarshal([]byte(raw), &e); err != nil {
		c.logger.Warn("discarding corrupt cache entry", slog.Any("error", err))
		c.clear()
		return zero, false
	}

	age := c.now().Sub(time.UnixMilli(e.Timestamp))
	if e.ViewerID != viewerID || age >= c.ttl || age < 0 {
		c.clear()
		return zero, false
	}
	return e.Data, true
}

// Put stores data for viewerID, replacing whatever entry exists.
func (c *ResultCache[T]) Put(viewerID string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := json.Marshal(entry[T]{
		ViewerID:  viewerID,
		Timestamp: c.now().UnixMilli(),
		Data:      data,
	})
	if err != nil {
		c.logger.Warn("cache encode failed", slog.Any("error", err))
		return
	}
	if err = c.storage.Set(c.key, string(b)); err != nil {
		c.logger.Warn("cache write failed", slog.Any("error", err))
	}
}

// Invalidate drops the stored entry.
func (c *ResultCache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear()
}

func (c *ResultCache[T]) clear() {
	if err := c.storage.Remove(c.key); err != nil {
		c.logger.Warn("cache remove failed", slog.Any("error", err))
	}
}
