package forms

import "github.com/mrlokans/inventory/internal/entities"

type DirectorWriter interface {
	AddDirector(name, nationality string, birthYear int) (int64, error)
	UpdateDirector(id int64, name, nationality string, birthYear int) (bool, error)
}

type ActorWriter interface {
	AddActor(name, nationality string, birthYear int) (int64, error)
	UpdateActor(id int64, name, nationality string, birthYear int) (bool, error)
}

type MovieWriter interface {
	CreateMovieWithCast(title string, year int, directorID int64, actorIDs []int64) (int64, error)
	UpdateMovieWithCast(id int64, title string, year int, directorID int64, actorIDs []int64) (bool, error)
}

type ItemWriter interface {
	AddItem(name string, quantity int) (int64, error)
	UpdateItem(id int64, name string, quantity int) (bool, error)
}

// SaveDirector validates in and adds or updates a director depending on mode.
// The bool is false when an edited director no longer exists.
func SaveDirector(store DirectorWriter, mode Mode[entities.Director], in PersonInput) (entities.Director, bool, error) {
	if err := in.Validate(); err != nil {
		return entities.Director{}, false, err
	}
	director := entities.Director{Name: in.Name, Nationality: in.Nationality, BirthYear: ParseNumber(in.BirthYear)}

	if existing, ok := mode.Existing(); ok {
		director.ID = existing.ID
		changed, err := store.UpdateDirector(director.ID, director.Name, director.Nationality, director.BirthYear)
		return director, changed, err
	}

	id, err := store.AddDirector(director.Name, director.Nationality, director.BirthYear)
	if err != nil {
		return entities.Director{}, false, err
	}
	director.ID = id
	return director, true, nil
}

// SaveActor validates in and adds or updates an actor depending on mode.
func SaveActor(store ActorWriter, mode Mode[entities.Actor], in PersonInput) (entities.Actor, bool, error) {
	if err := in.Validate(); err != nil {
		return entities.Actor{}, false, err
	}
	actor := entities.Actor{Name: in.Name, Nationality: in.Nationality, BirthYear: ParseNumber(in.BirthYear)}

	if existing, ok := mode.Existing(); ok {
		actor.ID = existing.ID
		changed, err := store.UpdateActor(actor.ID, actor.Name, actor.Nationality, actor.BirthYear)
		return actor, changed, err
	}

	id, err := store.AddActor(actor.Name, actor.Nationality, actor.BirthYear)
	if err != nil {
		return entities.Actor{}, false, err
	}
	actor.ID = id
	return actor, true, nil
}

// SaveMovie validates in and writes the movie together with its selected cast.
// In edit mode the previous cast is replaced.
func SaveMovie(store MovieWriter, mode Mode[entities.Movie], in MovieInput) (entities.Movie, bool, error) {
	if err := in.Validate(); err != nil {
		return entities.Movie{}, false, err
	}
	movie := entities.Movie{Title: in.Title, Year: ParseNumber(in.Year), DirectorID: ParseID(in.DirectorID)}
	movie.Director.ID = movie.DirectorID
	cast := in.Actors()

	if existing, ok := mode.Existing(); ok {
		movie.ID = existing.ID
		changed, err := store.UpdateMovieWithCast(movie.ID, movie.Title, movie.Year, movie.DirectorID, cast)
		return movie, changed, err
	}

	id, err := store.CreateMovieWithCast(movie.Title, movie.Year, movie.DirectorID, cast)
	if err != nil {
		return entities.Movie{}, false, err
	}
	movie.ID = id
	return movie, true, nil
}

// SaveItem validates in and adds or updates an item depending on mode.
func SaveItem(store ItemWriter, mode Mode[entities.Item], in ItemInput) (entities.Item, bool, error) {
	if err := in.Validate(); err != nil {
		return entities.Item{}, false, err
	}
	item := entities.Item{Name: in.Name, Quantity: ParseNumber(in.Quantity)}

	if existing, ok := mode.Existing(); ok {
		item.ID = existing.ID
		changed, err := store.UpdateItem(item.ID, item.Name, item.Quantity)
		return item, changed, err
	}

	id, err := store.AddItem(item.Name, item.Quantity)
	if err != nil {
		return entities.Item{}, false, err
	}
	item.ID = id
	return item, true, nil
}
