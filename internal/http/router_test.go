package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/inventory/internal/database"
	"github.com/mrlokans/inventory/internal/database/catalog"
	"github.com/mrlokans/inventory/internal/database/inventory"
	"github.com/mrlokans/inventory/internal/entities"
)

func setupTestRouter(t *testing.T, variant database.Variant) (*gin.Engine, *database.Database) {
	t.Helper()

	db, err := database.Open(database.Options{
		Path:     filepath.Join(t.TempDir(), "router.db"),
		Variant:  variant,
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := RouterConfig{Database: db, Version: "test"}
	switch variant {
	case database.VariantCatalog:
		cfg.CatalogStore = catalog.NewRepository(db.DB)
	case database.VariantInventory:
		cfg.ItemStore = inventory.NewRepository(db.DB)
	}
	return NewRouter(cfg), db
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_CatalogMovies(t *testing.T) {
	router, _ := setupTestRouter(t, database.VariantCatalog)

	w := doJSON(router, "GET", "/api/movies", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listings []MovieListing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listings))
	require.Len(t, listings, 3)
	for _, l := range listings {
		assert.NotEmpty(t, l.Director.Name)
		assert.Len(t, l.Actors, 2, l.Title)
	}
}

func TestRouter_CreateMovieWithCast(t *testing.T) {
	router, _ := setupTestRouter(t, database.VariantCatalog)

	w := doJSON(router, "POST", "/api/movies", `{"title":"Jackie Brown","year":"1997","director_id":"3","actor_ids":["5","6"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var movie entities.Movie
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movie))
	assert.Equal(t, int64(4), movie.ID)

	w = doJSON(router, "GET", "/api/movies/4/actors", "")
	require.Equal(t, http.StatusOK, w.Code)
	var actors []entities.Actor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actors))
	assert.Len(t, actors, 2)
}

func TestRouter_MovieWithUnknownDirector(t *testing.T) {
	router, _ := setupTestRouter(t, database.VariantCatalog)

	w := doJSON(router, "POST", "/api/movies", `{"title":"Orphan","director_id":"999"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), CodeConstraintViolation)
}

func TestRouter_DeleteReferencedDirector(t *testing.T) {
	router, _ := setupTestRouter(t, database.VariantCatalog)

	w := doJSON(router, "DELETE", "/api/directors/1", "")
	require.Equal(t, http.StatusConflict, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, catalog.DirectorInUseMessage, resp.Error)

	// Once its movie is gone the director can be removed.
	w = doJSON(router, "DELETE", "/api/movies/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, "DELETE", "/api/directors/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, "DELETE", "/api/directors/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CastEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t, database.VariantCatalog)

	w := doJSON(router, "POST", "/api/movies/1/actors", `{"actor_id":"1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), CodeUniquenessViolation)

	w = doJSON(router, "POST", "/api/movies/1/actors", `{"actor_id":"6"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/api/movies/1/actors", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, "DELETE", "/api/movies/1/actors", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/movies/1/actors", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRouter_Stats(t *testing.T) {
	router, _ := setupTestRouter(t, database.VariantCatalog)

	w := doJSON(router, "GET", "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats entities.CatalogStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, database.SeedCounts, stats)
}

func TestRouter_InventoryVariant(t *testing.T) {
	router, _ := setupTestRouter(t, database.VariantInventory)

	w := doJSON(router, "GET", "/api/movies", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, "POST", "/api/items", `{"name":"HDMI cable","quantity":"3"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var item entities.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 3, item.Quantity)

	w = doJSON(router, "PUT", "/api/items/1", `{"name":"HDMI cable","quantity":"4"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/stats", "")
	assert.JSONEq(t, `{"items":1}`, w.Body.String())

	w = doJSON(router, "DELETE", "/api/items/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, "PUT", "/api/items/1", `{"name":"gone"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
