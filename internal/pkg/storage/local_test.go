package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()

	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	t.Run("save and get round trip", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "gallery/ab/pic.jpg", strings.NewReader("image-bytes")))

		rc, err := store.Get(ctx, "gallery/ab/pic.jpg")
		require.NoError(t, err)
		defer rc.Close()

		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.Equal(t, "image-bytes", string(content))
	})

	t.Run("delete removes the file", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "gallery/cd/gone.jpg", strings.NewReader("x")))
		require.NoError(t, store.Delete(ctx, "gallery/cd/gone.jpg"))

		_, err := store.Get(ctx, "gallery/cd/gone.jpg")
		require.Error(t, err)
	})

	t.Run("deleting a missing file is not an error", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "gallery/ef/never-existed.jpg"))
	})
}
