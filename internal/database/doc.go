// Package database owns the SQLite file behind the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, pragmas, Options
//	├── schema.go        # Per-variant DDL and the destructive migration path
//	├── seed.go          # Catalog demonstration dataset
//	├── errors.go        # Constraint error classification
//	├── catalog/         # Directors, actors, movies and cast
//	└── inventory/       # Items
//
// A file holds exactly one schema variant. The variant is stamped into
// PRAGMA application_id and the schema revision into PRAGMA user_version.
// When the stamped revision is older than SchemaVersion every table is
// dropped and recreated; nothing is carried across.
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase("./movies.db", database.VariantCatalog)
//	repo := catalog.NewRepository(db.DB)
//	id, err := repo.AddDirector("Sofia Coppola", "EE.UU.", 1971)
//
// # Errors
//
// Repositories pass driver failures through Classify, so callers can test
// with errors.Is(err, database.ErrConstraintViolation) or
// errors.Is(err, database.ErrUniquenessViolation). Updates and deletes that
// match no row report false rather than an error.
package database
