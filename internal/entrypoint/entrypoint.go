package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/inventory/internal/config"
	"github.com/mrlokans/inventory/internal/database"
	"github.com/mrlokans/inventory/internal/database/catalog"
	"github.com/mrlokans/inventory/internal/database/inventory"
	http_controllers "github.com/mrlokans/inventory/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT; SIGKILL can't be caught
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	// Close the store only once in-flight requests are done with it.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// NewRouterConfig wires the repository matching the database's variant.
func NewRouterConfig(db *database.Database, version string) http_controllers.RouterConfig {
	routerCfg := http_controllers.RouterConfig{
		Database: db,
		Version:  version,
	}
	switch db.Variant() {
	case database.VariantCatalog:
		routerCfg.CatalogStore = catalog.NewRepository(db.DB)
	case database.VariantInventory:
		routerCfg.ItemStore = inventory.NewRepository(db.DB)
	}
	return routerCfg
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Inventory v%s", version)

	variant, err := database.ParseVariant(cfg.Database.Variant)
	if err != nil {
		log.Fatalf("Invalid CATALOG_VARIANT: %v", err)
	}

	db, err := database.Open(database.Options{
		Path:     cfg.Database.Path,
		Variant:  variant,
		LogLevel: cfg.Database.GormLogLevel(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	routerCfg := NewRouterConfig(db, version)
	routerCfg.ReadOnly = cfg.HTTP.ReadOnly
	if routerCfg.ReadOnly {
		log.Printf("Read-only mode enabled - write requests will be rejected")
	}
	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}

	Serve(router, cfg, onShutdown)
}
