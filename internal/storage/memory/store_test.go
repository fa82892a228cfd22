package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/codecraft/internal/storage/memory"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should report missing key as absent", func(t *testing.T) {
		store := memory.NewStore()

		value, ok, err := store.Get(ctx, "missing")

		require.NoError(t, err)
		require.False(t, ok)
		require.Empty(t, value)
	})

	t.Run("should round trip and delete", func(t *testing.T) {
		store := memory.NewStore()

		require.NoError(t, store.Set(ctx, "k", "v1"))
		require.NoError(t, store.Set(ctx, "k", "v2"))

		value, ok, err := store.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "v2", value)

		require.NoError(t, store.Delete(ctx, "k"))
		require.NoError(t, store.Delete(ctx, "k"))

		_, ok, err = store.Get(ctx, "k")
		require.NoError(t, err)
		require.False(t, ok)
	})
}
