package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ItemStats struct {
	Items int64 `json:"items"`
}

// StatsController reports row counts for whichever store is open. Exactly
// one of the two sources is expected to be set.
type StatsController struct {
	catalog CatalogStatsGetter
	items   ItemStore
}

func NewStatsController(catalog CatalogStatsGetter, items ItemStore) *StatsController {
	return &StatsController{catalog: catalog, items: items}
}

// GET /api/stats
func (sc *StatsController) Stats(c *gin.Context) {
	switch {
	case sc.catalog != nil:
		stats, err := sc.catalog.Stats()
		if err != nil {
			respondInternalError(c, err, "catalog stats")
			return
		}
		c.JSON(http.StatusOK, stats)
	case sc.items != nil:
		n, err := sc.items.CountItems()
		if err != nil {
			respondInternalError(c, err, "item stats")
			return
		}
		c.JSON(http.StatusOK, ItemStats{Items: n})
	default:
		respondNotFound(c, "store")
	}
}
