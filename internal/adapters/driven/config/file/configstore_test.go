package file

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStoreSetPersists(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("llm_provider", "groq"))
	require.NoError(t, store.Set("chunk_size", 500))
	require.NoError(t, store.Set("verbose", true))

	// A second store reading the same directory sees the saved values.
	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "groq", reloaded.GetString("llm_provider"))
	assert.Equal(t, 500, reloaded.GetInt("chunk_size"))
	assert.True(t, reloaded.GetBool("verbose"))
}

func TestConfigStoreMissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("nope"))
	assert.Zero(t, store.GetInt("nope"))
	assert.False(t, store.GetBool("nope"))
}

func TestConfigStoreTypeMismatch(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("chunk_size", "not a number"))
	assert.Zero(t, store.GetInt("chunk_size"))
	assert.Equal(t, "not a number", store.GetString("chunk_size"))
}

func TestConfigStorePath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
