// Package catalog provides database operations for the movie catalog:
// directors, actors, movies and the movie/actor join table.
//
// This package implements the CatalogStore interface defined in internal/http/stores.go.
//
// # Interface Implementation
//
//	var _ http.CatalogStore = (*Repository)(nil)
//
// # Usage
//
//	repo := catalog.NewRepository(db.DB)
//	id, err := repo.AddMovie("Jackie Brown", 1997, directorID)
//	err = repo.AddMovieActor(id, actorID)
//
// Every operation holds a single pooled connection for its whole duration and
// hands it back on return, error paths included. Only the cascading deletes
// and the *WithCast helpers run inside a transaction.
package catalog

import (
	"gorm.io/gorm"

	"github.com/mrlokans/inventory/internal/database"
	"github.com/mrlokans/inventory/internal/entities"
)

// Repository handles all catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// withConn runs fn on one connection taken from the pool.
func (r *Repository) withConn(fn func(conn *gorm.DB) error) error {
	return database.WithConn(r.db, fn)
}

// Stats counts the rows of every catalog table.
func (r *Repository) Stats() (entities.CatalogStats, error) {
	var stats entities.CatalogStats
	err := r.withConn(func(conn *gorm.DB) error {
		counts := []struct {
			model any
			dest  *int64
		}{
			{&entities.Director{}, &stats.Directors},
			{&entities.Actor{}, &stats.Actors},
			{&entities.Movie{}, &stats.Movies},
			{&entities.MovieActor{}, &stats.MovieActors},
		}
		for _, c := range counts {
			if err := conn.Model(c.model).Count(c.dest).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return stats, err
}
