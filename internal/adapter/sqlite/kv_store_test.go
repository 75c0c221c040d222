package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", "v1"))
	require.NoError(t, store.Set("k", "v2"))
	v, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, store.Remove("k"))
	_, ok, err = store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStorePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, store.Set("entry", `{"viewer_id":"A"}`))
	require.NoError(t, store.Close())

	store, err = Open(context.Background(), path)
	require.NoError(t, err)
	defer store.Close()
	v, ok, err := store.Get("entry")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"viewer_id":"A"}`, v)
}
