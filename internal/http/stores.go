package http

import (
	"github.com/mrlokans/inventory/internal/entities"
	"github.com/mrlokans/inventory/internal/forms"
)

// This file collects the store interfaces used by the controllers. Each
// controller depends only on the slice it needs; CatalogStore is the union
// the catalog repository satisfies.

type DirectorStore interface {
	forms.DirectorWriter
	DeleteDirector(id int64) (bool, error)
	GetAllDirectors() ([]entities.Director, error)
}

type ActorStore interface {
	forms.ActorWriter
	DeleteActor(id int64) (bool, error)
	GetAllActors() ([]entities.Actor, error)
}

type MovieStore interface {
	forms.MovieWriter
	DeleteMovie(id int64) (bool, error)
	GetAllMovies() ([]entities.Movie, error)
	GetActorsForMovie(movieID int64) ([]entities.Actor, error)
	AddMovieActor(movieID, actorID int64) error
	ClearMovieActors(movieID int64) error
}

type CatalogStatsGetter interface {
	Stats() (entities.CatalogStats, error)
}

// CatalogStore combines every catalog capability.
type CatalogStore interface {
	DirectorStore
	ActorStore
	MovieStore
	CatalogStatsGetter

	AddMovie(title string, year int, directorID int64) (int64, error)
	UpdateMovie(id int64, title string, year int, directorID int64) (bool, error)
}

type ItemStore interface {
	forms.ItemWriter
	DeleteItem(id int64) (bool, error)
	GetAllItems() ([]entities.Item, error)
	CountItems() (int64, error)
}
