package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/inventory/internal/entities"
	"github.com/mrlokans/inventory/internal/forms"
)

// MovieListing is one row of the movie list: the movie, its director's
// name and the actors in it.
type MovieListing struct {
	entities.Movie
	Actors []entities.Actor `json:"actors"`
}

type castRequest struct {
	ActorID string `form:"actor_id" json:"actor_id"`
}

type MoviesController struct {
	store MovieStore
}

func NewMoviesController(store MovieStore) *MoviesController {
	return &MoviesController{store: store}
}

// List returns every movie with its cast
// GET /api/movies
func (mc *MoviesController) List(c *gin.Context) {
	movies, err := mc.store.GetAllMovies()
	if err != nil {
		respondInternalError(c, err, "list movies")
		return
	}

	listings := make([]MovieListing, 0, len(movies))
	for _, movie := range movies {
		actors, err := mc.store.GetActorsForMovie(movie.ID)
		if err != nil {
			respondInternalError(c, err, "list movie actors")
			return
		}
		listings = append(listings, MovieListing{Movie: movie, Actors: actors})
	}
	c.JSON(http.StatusOK, listings)
}

// Create adds a movie together with its selected actors
// POST /api/movies
func (mc *MoviesController) Create(c *gin.Context) {
	mc.save(c, forms.Create[entities.Movie]())
}

// Update replaces a movie and its cast
// PUT /api/movies/:id
func (mc *MoviesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	mc.save(c, forms.Edit(entities.Movie{ID: id}))
}

func (mc *MoviesController) save(c *gin.Context, mode forms.Mode[entities.Movie]) {
	var in forms.MovieInput
	if err := c.ShouldBind(&in); err != nil {
		respondBadRequest(c, "invalid movie form")
		return
	}

	movie, changed, err := forms.SaveMovie(mc.store, mode, in)
	if err != nil {
		if errors.Is(err, forms.ErrTitleRequired) || errors.Is(err, forms.ErrDirectorRequired) {
			respondValidation(c, err)
			return
		}
		respondStoreError(c, err, "save movie")
		return
	}
	if !changed {
		respondNotFound(c, "movie")
		return
	}

	if mode.IsEdit() {
		c.JSON(http.StatusOK, movie)
		return
	}
	respondCreated(c, movie)
}

// Delete removes a movie and its cast entries
// DELETE /api/movies/:id
func (mc *MoviesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	removed, err := mc.store.DeleteMovie(id)
	if err != nil {
		respondStoreError(c, err, "delete movie")
		return
	}
	if !removed {
		respondNotFound(c, "movie")
		return
	}
	respondSuccess(c, "movie deleted")
}

// ListActors returns the cast of a movie
// GET /api/movies/:id/actors
func (mc *MoviesController) ListActors(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actors, err := mc.store.GetActorsForMovie(id)
	if err != nil {
		respondInternalError(c, err, "get movie actors")
		return
	}
	c.JSON(http.StatusOK, actors)
}

// AddActor links one actor to a movie
// POST /api/movies/:id/actors
func (mc *MoviesController) AddActor(c *gin.Context) {
	movieID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req castRequest
	_ = c.ShouldBind(&req)
	actorID := forms.ParseID(req.ActorID)
	if actorID == 0 {
		respondBadRequest(c, "actor_id is required")
		return
	}

	if err := mc.store.AddMovieActor(movieID, actorID); err != nil {
		respondStoreError(c, err, "add movie actor")
		return
	}
	respondCreated(c, entities.MovieActor{MovieID: movieID, ActorID: actorID})
}

// ClearActors unlinks every actor from a movie
// DELETE /api/movies/:id/actors
func (mc *MoviesController) ClearActors(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := mc.store.ClearMovieActors(id); err != nil {
		respondInternalError(c, err, "clear movie actors")
		return
	}
	respondSuccess(c, "cast cleared")
}
