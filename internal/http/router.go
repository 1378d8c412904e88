package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	if cfg.ReadOnly {
		router.Use(ReadOnlyMiddleware())
	}

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)
	router.GET("/ping", healthController.Ping)

	api := router.Group("/api")

	statsController := NewStatsController(cfg.CatalogStore, cfg.ItemStore)
	api.GET("/stats", statsController.Stats)

	if cfg.CatalogStore != nil {
		directors := NewDirectorsController(cfg.CatalogStore)
		api.GET("/directors", directors.List)
		api.POST("/directors", directors.Create)
		api.PUT("/directors/:id", directors.Update)
		api.DELETE("/directors/:id", directors.Delete)

		actors := NewActorsController(cfg.CatalogStore)
		api.GET("/actors", actors.List)
		api.POST("/actors", actors.Create)
		api.PUT("/actors/:id", actors.Update)
		api.DELETE("/actors/:id", actors.Delete)

		movies := NewMoviesController(cfg.CatalogStore)
		api.GET("/movies", movies.List)
		api.POST("/movies", movies.Create)
		api.PUT("/movies/:id", movies.Update)
		api.DELETE("/movies/:id", movies.Delete)
		api.GET("/movies/:id/actors", movies.ListActors)
		api.POST("/movies/:id/actors", movies.AddActor)
		api.DELETE("/movies/:id/actors", movies.ClearActors)
	}

	if cfg.ItemStore != nil {
		items := NewItemsController(cfg.ItemStore)
		api.GET("/items", items.List)
		api.POST("/items", items.Create)
		api.PUT("/items/:id", items.Update)
		api.DELETE("/items/:id", items.Delete)
	}

	return router
}
