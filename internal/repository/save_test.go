package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotseatlabs/stockticker-backend/internal/repository/storage/sqlite"
)

func newSaveRepo(t *testing.T) (context.Context, SaveRepository) {
	t.Helper()

	ctx := context.Background()

	storage, err := sqlite.New(filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, storage.Close())
	})

	require.NoError(t, storage.Init(ctx))

	return ctx, NewSaveRepository(storage)
}

func TestSaveRepository_PutAndGet(t *testing.T) {
	t.Run("Stored snapshot text comes back unchanged", func(t *testing.T) {
		ctx, saveRepo := newSaveRepo(t)

		// Given: snapshot text under a named slot
		snapshotText := `{"id":"123","players":[]}`
		require.NoError(t, saveRepo.Put(ctx, "friday-night", snapshotText))

		// When: the slot is read back
		restored, err := saveRepo.Get(ctx, "friday-night")

		// Then: the text is byte-identical
		require.NoError(t, err)
		assert.Equal(t, snapshotText, restored)
	})

	t.Run("Putting the same slot twice overwrites it", func(t *testing.T) {
		ctx, saveRepo := newSaveRepo(t)

		require.NoError(t, saveRepo.Put(ctx, "slot", "first"))
		require.NoError(t, saveRepo.Put(ctx, "slot", "second"))

		restored, err := saveRepo.Get(ctx, "slot")
		require.NoError(t, err)
		assert.Equal(t, "second", restored)
	})

	t.Run("Missing slot returns ErrSaveNotFound", func(t *testing.T) {
		ctx, saveRepo := newSaveRepo(t)

		_, err := saveRepo.Get(ctx, "no-such-slot")
		assert.ErrorIs(t, err, ErrSaveNotFound)
	})
}

func TestSaveRepository_List(t *testing.T) {
	ctx, saveRepo := newSaveRepo(t)

	// Given: two stored slots
	require.NoError(t, saveRepo.Put(ctx, "first", "{}"))
	require.NoError(t, saveRepo.Put(ctx, "second", "{}"))

	// When: listing slots
	names, err := saveRepo.List(ctx)

	// Then: both names are present
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"first", "second"}, names)
}
