package inventory

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/inventory/internal/database"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Open(database.Options{
		Path:     filepath.Join(t.TempDir(), "items.db"),
		Variant:  database.VariantInventory,
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB)
}

func TestRepository_StartsEmpty(t *testing.T) {
	repo := setupTestDB(t)

	items, err := repo.GetAllItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRepository_AddItem(t *testing.T) {
	repo := setupTestDB(t)

	first, err := repo.AddItem("HDMI cable", 3)
	require.NoError(t, err)
	second, err := repo.AddItem("USB hub", 0)
	require.NoError(t, err)
	assert.Greater(t, second, first)

	items, err := repo.GetAllItems()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "HDMI cable", items[0].Name)
	assert.Equal(t, 3, items[0].Quantity)

	count, err := repo.CountItems()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRepository_UpdateItem(t *testing.T) {
	repo := setupTestDB(t)

	id, err := repo.AddItem("Screws", 100)
	require.NoError(t, err)

	changed, err := repo.UpdateItem(id, "Screws M3", 80)
	require.NoError(t, err)
	assert.True(t, changed)

	items, err := repo.GetAllItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Screws M3", items[0].Name)
	assert.Equal(t, 80, items[0].Quantity)

	changed, err = repo.UpdateItem(id+100, "ghost", 1)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestRepository_DeleteItem(t *testing.T) {
	repo := setupTestDB(t)

	id, err := repo.AddItem("Tape", 2)
	require.NoError(t, err)

	removed, err := repo.DeleteItem(id)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteItem(id)
	require.NoError(t, err)
	assert.False(t, removed)
}
