package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/inventory/internal/entities"
	"github.com/mrlokans/inventory/internal/forms"
)

type ActorsController struct {
	store ActorStore
}

func NewActorsController(store ActorStore) *ActorsController {
	return &ActorsController{store: store}
}

// List returns every actor
// GET /api/actors
func (ac *ActorsController) List(c *gin.Context) {
	actors, err := ac.store.GetAllActors()
	if err != nil {
		respondInternalError(c, err, "list actors")
		return
	}
	c.JSON(http.StatusOK, actors)
}

// Create adds an actor
// POST /api/actors
func (ac *ActorsController) Create(c *gin.Context) {
	ac.save(c, forms.Create[entities.Actor]())
}

// Update replaces the fields of an actor
// PUT /api/actors/:id
func (ac *ActorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ac.save(c, forms.Edit(entities.Actor{ID: id}))
}

func (ac *ActorsController) save(c *gin.Context, mode forms.Mode[entities.Actor]) {
	var in forms.PersonInput
	if err := c.ShouldBind(&in); err != nil {
		respondBadRequest(c, "invalid actor form")
		return
	}

	actor, changed, err := forms.SaveActor(ac.store, mode, in)
	if err != nil {
		if errors.Is(err, forms.ErrNameRequired) {
			respondValidation(c, err)
			return
		}
		respondStoreError(c, err, "save actor")
		return
	}
	if !changed {
		respondNotFound(c, "actor")
		return
	}

	if mode.IsEdit() {
		c.JSON(http.StatusOK, actor)
		return
	}
	respondCreated(c, actor)
}

// Delete removes an actor along with its cast entries
// DELETE /api/actors/:id
func (ac *ActorsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	removed, err := ac.store.DeleteActor(id)
	if err != nil {
		respondStoreError(c, err, "delete actor")
		return
	}
	if !removed {
		respondNotFound(c, "actor")
		return
	}
	respondSuccess(c, "actor deleted")
}
