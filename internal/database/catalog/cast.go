package catalog

import (
	"gorm.io/gorm"

	"github.com/mrlokans/inventory/internal/database"
	"github.com/mrlokans/inventory/internal/entities"
)

// DuplicateCastMessage is reported when a movie/actor pair is linked twice.
const DuplicateCastMessage = "actor is already linked to this movie"

// AddMovieActor links an actor to a movie. Linking the same pair twice fails
// with database.ErrUniquenessViolation; use ClearMovieActors and re-add when
// replacing a cast.
func (r *Repository) AddMovieActor(movieID, actorID int64) error {
	err := r.withConn(func(conn *gorm.DB) error {
		return linkActor(conn, movieID, actorID)
	})
	return database.Describe(database.Classify(err), database.ErrUniquenessViolation, DuplicateCastMessage)
}

// ClearMovieActors removes every cast row of the movie.
func (r *Repository) ClearMovieActors(movieID int64) error {
	err := r.withConn(func(conn *gorm.DB) error {
		return clearCast(conn, movieID)
	})
	return database.Classify(err)
}

// GetActorsForMovie returns the actors linked to movieID, or an empty slice.
func (r *Repository) GetActorsForMovie(movieID int64) ([]entities.Actor, error) {
	var actors []entities.Actor
	err := r.withConn(func(conn *gorm.DB) error {
		return conn.Table("actors AS a").
			Select("a.*").
			Joins("JOIN movies_actors ma ON a.id = ma.actor_id").
			Where("ma.movie_id = ?", movieID).
			Scan(&actors).Error
	})
	if err != nil {
		return nil, err
	}
	if actors == nil {
		actors = []entities.Actor{}
	}
	return actors, nil
}

// CreateMovieWithCast inserts a movie and links all actorIDs in one
// transaction. Nothing is kept if any insert fails.
func (r *Repository) CreateMovieWithCast(title string, year int, directorID int64, actorIDs []int64) (int64, error) {
	var id int64
	err := r.withConn(func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			var err error
			if id, err = insertMovie(tx, title, year, directorID); err != nil {
				return err
			}
			return linkActors(tx, id, actorIDs)
		})
	})
	if err != nil {
		return 0, database.Classify(err)
	}
	return id, nil
}

// UpdateMovieWithCast overwrites the movie and replaces its cast with
// actorIDs in one transaction. It reports false, changing nothing, when id
// matches no movie.
func (r *Repository) UpdateMovieWithCast(id int64, title string, year int, directorID int64, actorIDs []int64) (bool, error) {
	var changed bool
	err := r.withConn(func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			var err error
			if changed, err = updateMovie(tx, id, title, year, directorID); err != nil || !changed {
				return err
			}
			if err := clearCast(tx, id); err != nil {
				return err
			}
			return linkActors(tx, id, actorIDs)
		})
	})
	if err != nil {
		return false, database.Classify(err)
	}
	return changed, nil
}

func linkActor(tx *gorm.DB, movieID, actorID int64) error {
	return tx.Create(&entities.MovieActor{MovieID: movieID, ActorID: actorID}).Error
}

func linkActors(tx *gorm.DB, movieID int64, actorIDs []int64) error {
	for _, actorID := range actorIDs {
		if err := linkActor(tx, movieID, actorID); err != nil {
			return err
		}
	}
	return nil
}

func clearCast(tx *gorm.DB, movieID int64) error {
	return tx.Where("movie_id = ?", movieID).Delete(&entities.MovieActor{}).Error
}
