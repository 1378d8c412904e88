package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/inventory/internal/database"
	"github.com/mrlokans/inventory/internal/database/catalog"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	assert.NotEmpty(t, rr.Header().Get("Content-Security-Policy"))
}

func TestReadOnlyMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(ReadOnlyMiddleware())
	router.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "OK") })
	router.POST("/test", func(c *gin.Context) { c.String(http.StatusOK, "OK") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), CodeReadOnly)
}

func TestRouter_ReadOnly(t *testing.T) {
	_, db := setupTestRouter(t, database.VariantCatalog)
	router := NewRouter(RouterConfig{
		Database:     db,
		CatalogStore: catalog.NewRepository(db.DB),
		ReadOnly:     true,
	})

	w := doJSON(router, "DELETE", "/api/directors/1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
