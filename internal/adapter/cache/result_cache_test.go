package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

const testKey = "supporters"

func newTestCache(t *testing.T) (*ResultCache[[]string], *MemoryStorage, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	storage := NewMemoryStorage()
	return New[[]string](storage, testKey, 5*time.Minute, clock.Now, nil), storage, clock
}

func TestResultCacheHitWithinTTL(t *testing.T) {
	c, _, clock := newTestCache(t)
	c.Put("0xabc", []string{"a", "b"})

	clock.Advance(4 * time.Minute)
	got, ok := c.Get("0xabc")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestResultCacheExpires(t *testing.T) {
	c, storage, clock := newTestCache(t)
	c.Put("0xabc", []string{"a"})

	clock.Advance(6 * time.Minute)
	_, ok := c.Get("0xabc")
	assert.False(t, ok)

	_, present, _ := storage.Get(testKey)
	assert.False(t, present, "expired entry should be removed")
}

func TestResultCacheExactTTLIsMiss(t *testing.T) {
	c, _, clock := newTestCache(t)
	c.Put("0xabc", []string{"a"})
	clock.Advance(5 * time.Minute)
	_, ok := c.Get("0xabc")
	assert.False(t, ok)
}

func TestResultCacheViewerMismatch(t *testing.T) {
	c, storage, _ := newTestCache(t)
	c.Put("A", []string{"a"})

	_, ok := c.Get("B")
	assert.False(t, ok)

	// the mismatching read clears the slot, so A misses too
	_, present, _ := storage.Get(testKey)
	assert.False(t, present)
	_, ok = c.Get("A")
	assert.False(t, ok)
}

func TestResultCacheCorruptEntryFailsOpen(t *testing.T) {
	c, storage, _ := newTestCache(t)
	require.NoError(t, storage.Set(testKey, "{not json"))

	_, ok := c.Get("A")
	assert.False(t, ok)
	_, present, _ := storage.Get(testKey)
	assert.False(t, present)
}

func TestResultCachePutOverwrites(t *testing.T) {
	c, _, _ := newTestCache(t)
	c.Put("A", []string{"first"})
	c.Put("B", []string{"second"})

	_, ok := c.Get("A")
	assert.False(t, ok)

	c.Put("B", []string{"third"})
	got, ok := c.Get("B")
	require.True(t, ok)
	assert.Equal(t, []string{"third"}, got)
}

type brokenStorage struct{}

func (brokenStorage) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (brokenStorage) Set(string, string) error { return errors.New("disk gone") }
func (brokenStorage) Remove(string) error { return errors.New("disk gone") }

func TestResultCacheBrokenStorage(t *testing.T) {
	c := New[[]string](brokenStorage{}, testKey, 0, nil, nil)
	c.Put("A", []string{"x"})
	_, ok := c.Get("A")
	assert.False(t, ok)
}

func TestResultCacheInvalidate(t *testing.T) {
	c, _, _ := newTestCache(t)
	c.Put("A", []string{"x"})
	c.Invalidate()
	_, ok := c.Get("A")
	assert.False(t, ok)
}
