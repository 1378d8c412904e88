package http

import "github.com/mrlokans/inventory/internal/database"

// RouterConfig contains all dependencies needed to create the HTTP router.
// Only one of CatalogStore and ItemStore is set, matching the variant the
// database was opened with; routes for the other are not registered.
type RouterConfig struct {
	Database *database.Database

	CatalogStore CatalogStore
	ItemStore    ItemStore

	// ReadOnly rejects every write request with 403.
	ReadOnly bool

	// Application info
	Version string
}
