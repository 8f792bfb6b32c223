package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := record{Name: "mugs", Count: 3}
	require.NoError(t, store.Save("printmaania-cart", in))

	var out record
	require.NoError(t, store.Load("printmaania-cart", &out))
	assert.Equal(t, in, out)
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out record
	err = store.Load("never-saved", &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreOverwriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("key", record{Name: "v1"}))
	require.NoError(t, store.Save("key", record{Name: "v2"}))

	var out record
	require.NoError(t, store.Load("key", &out))
	assert.Equal(t, "v2", out.Name)

	_, err = os.Stat(filepath.Join(dir, "key.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("key", record{Name: "v1"}))
	require.NoError(t, store.Delete("key"))

	var out record
	assert.ErrorIs(t, store.Load("key", &out), ErrNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete("key"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	var out record
	assert.ErrorIs(t, store.Load("key", &out), ErrNotFound)

	require.NoError(t, store.Save("key", record{Name: "mem", Count: 1}))
	require.NoError(t, store.Load("key", &out))
	assert.Equal(t, "mem", out.Name)

	require.NoError(t, store.Delete("key"))
	assert.ErrorIs(t, store.Load("key", &out), ErrNotFound)
}
