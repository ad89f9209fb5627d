package imagestore

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPhoto() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 16, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 12), G: uint8(y * 20), B: 90, A: 255})
		}
	}
	return img
}

func TestFileStore_SaveLoadDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	store := NewFileStore(dir)
	ctx := context.Background()

	// The directory must not be required to exist up front.
	_, err := os.Stat(dir)
	require.True(t, os.IsNotExist(err))

	key, err := store.Save(ctx, testPhoto())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	t.Run("RoundTrip", func(t *testing.T) {
		img, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, testPhoto().Bounds(), img.Bounds())

		// The stored file is exactly what Load reads back.
		data, err := os.ReadFile(filepath.Join(dir, key))
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("UniqueKeys", func(t *testing.T) {
		other, err := store.Save(ctx, testPhoto())
		require.NoError(t, err)
		assert.NotEqual(t, key, other)
	})

	t.Run("DeleteThenLoad", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, key))

		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, store.Delete(ctx, key), ErrNotFound)
	})
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	_, err := store.Load(ctx, "nope.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	_, err := store.Load(ctx, "../outside.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, ""), ErrNotFound)
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.jpg"), []byte("not a jpeg"), 0o644))

	_, err := store.Load(ctx, "bad.jpg")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestMemory_Store(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	key, err := store.Save(ctx, testPhoto())
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	img, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, testPhoto().Bounds(), img.Bounds())

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Load(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, store.Len())
}
