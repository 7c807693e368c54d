package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/caching/manager"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/database"
)

// HealthHandlers serves the liveness endpoint.
type HealthHandlers struct {
	db    *database.Database
	cache *manager.Manager
}

func NewHealthHandlers(db *database.Database, cache *manager.Manager) *HealthHandlers {
	return &HealthHandlers{
		db:    db,
		cache: cache,
	}
}

// GetHealth reports database reachability and widget cache occupancy.
func (h *HealthHandlers) GetHealth(c *gin.Context) {
	status := http.StatusOK
	overall := "ok"
	dbStatus, err := h.db.Status()
	if err != nil {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	chats, wizards, tallies := h.cache.Counts()
	c.JSON(status, gin.H{
		"status":   overall,
		"database": dbStatus,
		"cache": gin.H{
			"chatSessions": chats,
			"wizards":      wizards,
			"voteTallies":  tallies,
		},
	})
}
