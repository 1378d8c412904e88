package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/inventory/internal/entities"
	"github.com/mrlokans/inventory/internal/forms"
)

type DirectorsController struct {
	store DirectorStore
}

func NewDirectorsController(store DirectorStore) *DirectorsController {
	return &DirectorsController{store: store}
}

// List returns every director
// GET /api/directors
func (dc *DirectorsController) List(c *gin.Context) {
	directors, err := dc.store.GetAllDirectors()
	if err != nil {
		respondInternalError(c, err, "list directors")
		return
	}
	c.JSON(http.StatusOK, directors)
}

// Create adds a director
// POST /api/directors
func (dc *DirectorsController) Create(c *gin.Context) {
	dc.save(c, forms.Create[entities.Director]())
}

// Update replaces the fields of a director
// PUT /api/directors/:id
func (dc *DirectorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	dc.save(c, forms.Edit(entities.Director{ID: id}))
}

func (dc *DirectorsController) save(c *gin.Context, mode forms.Mode[entities.Director]) {
	var in forms.PersonInput
	if err := c.ShouldBind(&in); err != nil {
		respondBadRequest(c, "invalid director form")
		return
	}

	director, changed, err := forms.SaveDirector(dc.store, mode, in)
	if err != nil {
		if errors.Is(err, forms.ErrNameRequired) {
			respondValidation(c, err)
			return
		}
		respondStoreError(c, err, "save director")
		return
	}
	if !changed {
		respondNotFound(c, "director")
		return
	}

	if mode.IsEdit() {
		c.JSON(http.StatusOK, director)
		return
	}
	respondCreated(c, director)
}

// Delete removes a director that no movie references
// DELETE /api/directors/:id
func (dc *DirectorsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	removed, err := dc.store.DeleteDirector(id)
	if err != nil {
		respondStoreError(c, err, "delete director")
		return
	}
	if !removed {
		respondNotFound(c, "director")
		return
	}
	respondSuccess(c, "director deleted")
}
