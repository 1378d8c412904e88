package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/inventory/internal/entities"
)

func openTestDB(t *testing.T, path string, variant Variant, version int) *Database {
	t.Helper()
	db, err := Open(Options{Path: path, Variant: variant, LogLevel: logger.Silent, version: version})
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *Database, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.DB.Model(model).Count(&n).Error)
	return n
}

func TestNewDatabase_SeedsCatalogOnCreation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.db")
	db := openTestDB(t, path, VariantCatalog, 0)
	defer db.Close()

	assert.Equal(t, int64(3), countRows(t, db, &entities.Director{}))
	assert.Equal(t, int64(6), countRows(t, db, &entities.Actor{}))
	assert.Equal(t, int64(3), countRows(t, db, &entities.Movie{}))
	assert.Equal(t, int64(6), countRows(t, db, &entities.MovieActor{}))

	version, err := db.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, version)

	var directors []entities.Director
	require.NoError(t, db.DB.Order("id").Find(&directors).Error)
	require.Len(t, directors, 3)
	assert.Equal(t, "Jonathan Demme", directors[0].Name)
	assert.Equal(t, "Nueva Zelanda", directors[1].Nationality)
	assert.Equal(t, 1963, directors[2].BirthYear)
}

func TestNewDatabase_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.db")

	db := openTestDB(t, path, VariantCatalog, 0)
	require.NoError(t, db.DB.Create(&entities.Director{Name: "Sofia Coppola"}).Error)
	require.NoError(t, db.Close())

	db = openTestDB(t, path, VariantCatalog, 0)
	defer db.Close()

	assert.Equal(t, int64(4), countRows(t, db, &entities.Director{}), "seed must not run twice")
}

func TestNewDatabase_UpgradeIsDestructive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.db")

	db := openTestDB(t, path, VariantCatalog, 1)
	require.NoError(t, db.DB.Create(&entities.Director{Name: "Sofia Coppola"}).Error)
	require.NoError(t, db.DB.Where("1 = 1").Delete(&entities.MovieActor{}).Error)
	require.NoError(t, db.Close())

	db = openTestDB(t, path, VariantCatalog, 2)
	defer db.Close()

	version, err := db.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)
	assert.Equal(t, int64(3), countRows(t, db, &entities.Director{}))
	assert.Equal(t, int64(6), countRows(t, db, &entities.MovieActor{}))

	var coppola int64
	require.NoError(t, db.DB.Model(&entities.Director{}).Where("name = ?", "Sofia Coppola").Count(&coppola).Error)
	assert.Zero(t, coppola)
}

func TestNewDatabase_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.db")

	db := openTestDB(t, path, VariantCatalog, 3)
	require.NoError(t, db.Close())

	_, err := Open(Options{Path: path, Variant: VariantCatalog, LogLevel: logger.Silent, version: 2})
	assert.ErrorIs(t, err, ErrSchemaTooNew)
}

func TestNewDatabase_RejectsOtherVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	db := openTestDB(t, path, VariantInventory, 0)
	require.NoError(t, db.Close())

	_, err := Open(Options{Path: path, Variant: VariantCatalog, LogLevel: logger.Silent})
	assert.ErrorIs(t, err, ErrVariantMismatch)
}

func TestNewDatabase_InventoryVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.db")
	db := openTestDB(t, path, VariantInventory, 0)
	defer db.Close()

	assert.Equal(t, VariantInventory, db.Variant())
	assert.Zero(t, countRows(t, db, &entities.Item{}))
	assert.False(t, db.DB.Migrator().HasTable("movies"))
}

func TestNewDatabase_ForeignKeysEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.db")
	db := openTestDB(t, path, VariantCatalog, 0)
	defer db.Close()

	var enabled int
	require.NoError(t, db.DB.Raw("PRAGMA foreign_keys").Row().Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestDatabase_Reset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.db")
	db := openTestDB(t, path, VariantCatalog, 0)
	defer db.Close()

	require.NoError(t, db.DB.Create(&entities.Actor{Name: "Pam Grier"}).Error)
	require.Equal(t, int64(7), countRows(t, db, &entities.Actor{}))

	require.NoError(t, db.Reset())

	assert.Equal(t, int64(6), countRows(t, db, &entities.Actor{}))
	var maxID int64
	require.NoError(t, db.DB.Model(&entities.Actor{}).Select("MAX(id)").Row().Scan(&maxID))
	assert.Equal(t, int64(6), maxID, "rebuilt tables start a fresh id sequence")
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, VariantCatalog, v)

	v, err = ParseVariant(" Inventory ")
	require.NoError(t, err)
	assert.Equal(t, VariantInventory, v)

	_, err = ParseVariant("books")
	assert.Error(t, err)
}

func TestDatabase_TableCounts(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "counts.db"), VariantCatalog, 0)

	counts, err := db.TableCounts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"directors":     SeedCounts.Directors,
		"actors":        SeedCounts.Actors,
		"movies":        SeedCounts.Movies,
		"movies_actors": SeedCounts.MovieActors,
	}, counts)

	inv := openTestDB(t, filepath.Join(t.TempDir(), "items.db"), VariantInventory, 0)
	counts, err = inv.TableCounts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"items": 0}, counts)
}
