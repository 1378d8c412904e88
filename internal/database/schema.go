package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
)

type schema struct {
	applicationID int32
	// tables in creation order; dropped in reverse.
	tables []string
	ddl    []string
	seed   func(tx *gorm.DB) error
}

var schemas = map[Variant]schema{
	VariantCatalog: {
		applicationID: 0x4d564945, // "MVIE"
		tables:        []string{"directors", "actors", "movies", "movies_actors"},
		ddl: []string{
			`CREATE TABLE directors (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL DEFAULT '',
				nationality TEXT NOT NULL DEFAULT '',
				birth_year INTEGER NOT NULL DEFAULT 0
			)`,
			`CREATE TABLE actors (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL DEFAULT '',
				nationality TEXT NOT NULL DEFAULT '',
				birth_year INTEGER NOT NULL DEFAULT 0
			)`,
			`CREATE TABLE movies (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL DEFAULT '',
				year INTEGER NOT NULL DEFAULT 0,
				director_id INTEGER,
				FOREIGN KEY(director_id) REFERENCES directors(id)
			)`,
			`CREATE TABLE movies_actors (
				movie_id INTEGER,
				actor_id INTEGER,
				FOREIGN KEY(movie_id) REFERENCES movies(id),
				FOREIGN KEY(actor_id) REFERENCES actors(id),
				PRIMARY KEY(movie_id, actor_id)
			)`,
		},
		seed: seedCatalog,
	},
	VariantInventory: {
		applicationID: 0x4954454d, // "ITEM"
		tables:        []string{"items"},
		ddl: []string{
			`CREATE TABLE items (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL DEFAULT '',
				quantity INTEGER NOT NULL DEFAULT 0
			)`,
		},
	},
}

// migrate compares the file's stamped version with the one this build
// writes. Fresh and outdated files are rebuilt; there is no in-place upgrade.
func (d *Database) migrate() error {
	return WithConn(d.DB, func(conn *gorm.DB) error {
		var version, appID int32
		if err := conn.Raw("PRAGMA user_version").Row().Scan(&version); err != nil {
			return fmt.Errorf("get user_version: %w", err)
		}
		if err := conn.Raw("PRAGMA application_id").Row().Scan(&appID); err != nil {
			return fmt.Errorf("get application_id: %w", err)
		}

		s := schemas[d.variant]
		if appID != 0 && appID != s.applicationID {
			return fmt.Errorf("%w: %s opened as %s", ErrVariantMismatch, d.path, d.variant)
		}

		switch {
		case int(version) == d.version:
			return nil
		case int(version) > d.version:
			return fmt.Errorf("%w: file is v%d, build supports v%d", ErrSchemaTooNew, version, d.version)
		case version == 0:
			log.Printf("Creating %s schema v%d", d.variant, d.version)
		default:
			log.Printf("Upgrading %s schema v%d -> v%d, existing data will be discarded", d.variant, version, d.version)
		}
		return d.rebuild(conn)
	})
}

// rebuild drops, recreates and reseeds the variant's tables in one transaction.
func (d *Database) rebuild(conn *gorm.DB) error {
	s, ok := schemas[d.variant]
	if !ok {
		return errors.New("no schema registered for variant " + string(d.variant))
	}

	err := conn.Transaction(func(tx *gorm.DB) error {
		for i := len(s.tables) - 1; i >= 0; i-- {
			if err := tx.Exec("DROP TABLE IF EXISTS " + s.tables[i]).Error; err != nil {
				return fmt.Errorf("drop %s: %w", s.tables[i], err)
			}
		}
		for _, stmt := range s.ddl {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
		}
		if s.seed != nil {
			if err := s.seed(tx); err != nil {
				return fmt.Errorf("failed to seed %s: %w", d.variant, err)
			}
		}
		if err := tx.Exec(fmt.Sprintf("PRAGMA application_id = %d", s.applicationID)).Error; err != nil {
			return fmt.Errorf("set application_id: %w", err)
		}
		if err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", d.version)).Error; err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
