package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested")
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Ping(ctx))

	_, err = store.Get(ctx, "employees")
	require.ErrorIs(t, err, ErrBlobNotFound)

	require.NoError(t, store.Put(ctx, "employees", []byte(`[{"id":1}]`)))
	require.NoError(t, store.Put(ctx, "employees", []byte(`[]`)))

	got, err := store.Get(ctx, "employees")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "employees.json", entries[0].Name())
}

func TestFileStoreRejectsPathTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	err = store.Put(context.Background(), "../escape", []byte("x"))
	require.Error(t, err)
	_, err = store.Get(context.Background(), "a/b")
	require.Error(t, err)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	buf := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", buf))
	buf[0] = 'z'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'z'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestNilBackendsReportNotConfigured(t *testing.T) {
	ctx := context.Background()
	var r *Redis
	assert.Error(t, r.Ping(ctx))
	_, err := r.Get(ctx, "k")
	assert.Error(t, err)

	var p *Postgres
	assert.Error(t, p.Ping(ctx))
	assert.Error(t, p.Put(ctx, "k", nil))
}
