// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - CatalogStore: directors, actors, movies and cast (internal/http/stores.go)
//   - ItemStore: inventory items (internal/http/stores.go)
//   - DirectorStore, ActorStore, MovieStore: per-controller slices of CatalogStore
//
// ## Form Interfaces
//
//   - DirectorWriter, ActorWriter, MovieWriter, ItemWriter: the single store
//     call a form save makes (internal/forms/save.go)
//
// # Adding a New Table
//
// To add a new record type to the catalog:
//
//  1. Add the entity to internal/entities/ with its TableName
//
//  2. Append its CREATE TABLE to the catalog schema in internal/database/schema.go
//     and bump SchemaVersion (existing files are rebuilt on next open)
//
//  3. Implement the repository methods in internal/database/catalog/
//
//     func (r *Repository) AddStudio(name string) (int64, error)
//
//  4. Declare the store interface and controller in internal/http/ and
//     register its routes in router.go
//
//  5. Add compile-time check:
//
//     var _ http.StudioStore = (*catalog.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
