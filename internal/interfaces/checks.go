package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/inventory/internal/database/catalog"
	"github.com/mrlokans/inventory/internal/database/inventory"
	"github.com/mrlokans/inventory/internal/forms"
	"github.com/mrlokans/inventory/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// CatalogStore implementations
var _ http.CatalogStore = (*catalog.Repository)(nil)

// ItemStore implementations
var _ http.ItemStore = (*inventory.Repository)(nil)

// =============================================================================
// Forms
// =============================================================================

var _ forms.DirectorWriter = (*catalog.Repository)(nil)
var _ forms.ActorWriter = (*catalog.Repository)(nil)
var _ forms.MovieWriter = (*catalog.Repository)(nil)
var _ forms.ItemWriter = (*inventory.Repository)(nil)
