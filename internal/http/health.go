package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/inventory/internal/database"
)

type HealthResponse struct {
	Status        string            `json:"status"`
	Time          string            `json:"time"`
	Version       string            `json:"version,omitempty"`
	Variant       string            `json:"variant,omitempty"`
	SchemaVersion int               `json:"schema_version,omitempty"`
	Checks        map[string]string `json:"checks"`
	Counts        map[string]int64  `json:"counts,omitempty"`
}

type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{
		db:      db,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"
	health := HealthResponse{
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	// Check database connectivity
	if h.db != nil {
		health.Variant = string(h.db.Variant())
		if err := h.db.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"

			if version, err := h.db.SchemaVersion(); err == nil {
				health.SchemaVersion = version
			}
			counts, err := h.db.TableCounts()
			if err != nil {
				checks["tables"] = "error: " + err.Error()
				status = "unhealthy"
			} else {
				checks["tables"] = "ok"
				health.Counts = counts
			}
		}
	} else {
		checks["database"] = "not configured"
	}
	health.Status = status

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

// Ping answers liveness probes without touching the database.
func (h *HealthController) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
