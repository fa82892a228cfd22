package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/codecraft/internal/storage/file"
)

func TestNewStore(t *testing.T) {
	t.Run("should require a path", func(t *testing.T) {
		store, err := file.NewStore("  ")

		require.Error(t, err)
		require.Nil(t, store)
	})

	t.Run("should create parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", file.DefaultFileName)

		store, err := file.NewStore(path)

		require.NoError(t, err)
		require.Equal(t, path, store.Path())

		info, statErr := os.Stat(filepath.Dir(path))
		require.NoError(t, statErr)
		require.True(t, info.IsDir())
	})
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), file.DefaultFileName)

	store, err := file.NewStore(path)
	require.NoError(t, err)

	t.Run("should report absent before first write", func(t *testing.T) {
		value, ok, getErr := store.Get(ctx, "openrouter-api-key")

		require.NoError(t, getErr)
		require.False(t, ok)
		require.Empty(t, value)
	})

	t.Run("should persist across store instances", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "openrouter-api-key", "sk-or-v1-abc"))

		reopened, openErr := file.NewStore(path)
		require.NoError(t, openErr)

		value, ok, getErr := reopened.Get(ctx, "openrouter-api-key")
		require.NoError(t, getErr)
		require.True(t, ok)
		require.Equal(t, "sk-or-v1-abc", value)
	})

	t.Run("should keep other keys when deleting", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "other", "value"))
		require.NoError(t, store.Delete(ctx, "openrouter-api-key"))

		_, ok, getErr := store.Get(ctx, "openrouter-api-key")
		require.NoError(t, getErr)
		require.False(t, ok)

		value, ok, getErr := store.Get(ctx, "other")
		require.NoError(t, getErr)
		require.True(t, ok)
		require.Equal(t, "value", value)
	})

	t.Run("should write owner-only file", func(t *testing.T) {
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("should tolerate deleting a missing key", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "never-set"))
	})
}

func TestStore_CorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), file.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("key: [unterminated"), 0o600))

	store, err := file.NewStore(path)
	require.NoError(t, err)

	_, _, getErr := store.Get(ctx, "key")

	require.Error(t, getErr)
	require.Contains(t, getErr.Error(), "failed to decode store")
}
