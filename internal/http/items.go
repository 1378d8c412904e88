package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/inventory/internal/entities"
	"github.com/mrlokans/inventory/internal/forms"
)

type ItemsController struct {
	store ItemStore
}

func NewItemsController(store ItemStore) *ItemsController {
	return &ItemsController{store: store}
}

// List returns every item
// GET /api/items
func (ic *ItemsController) List(c *gin.Context) {
	items, err := ic.store.GetAllItems()
	if err != nil {
		respondInternalError(c, err, "list items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create adds an item
// POST /api/items
func (ic *ItemsController) Create(c *gin.Context) {
	ic.save(c, forms.Create[entities.Item]())
}

// Update replaces an item's name and quantity
// PUT /api/items/:id
func (ic *ItemsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ic.save(c, forms.Edit(entities.Item{ID: id}))
}

func (ic *ItemsController) save(c *gin.Context, mode forms.Mode[entities.Item]) {
	var in forms.ItemInput
	if err := c.ShouldBind(&in); err != nil {
		respondBadRequest(c, "invalid item form")
		return
	}

	item, changed, err := forms.SaveItem(ic.store, mode, in)
	if err != nil {
		if errors.Is(err, forms.ErrNameRequired) {
			respondValidation(c, err)
			return
		}
		respondStoreError(c, err, "save item")
		return
	}
	if !changed {
		respondNotFound(c, "item")
		return
	}

	if mode.IsEdit() {
		c.JSON(http.StatusOK, item)
		return
	}
	respondCreated(c, item)
}

// Delete removes an item
// DELETE /api/items/:id
func (ic *ItemsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	removed, err := ic.store.DeleteItem(id)
	if err != nil {
		respondInternalError(c, err, "delete item")
		return
	}
	if !removed {
		respondNotFound(c, "item")
		return
	}
	respondSuccess(c, "item deleted")
}
