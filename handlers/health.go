package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"web3dir/models"
)

// HealthCheck serves GET /api/health. It is a liveness probe for the
// database connection only.
func HealthCheck(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			log.Printf("Error GET /api/health: %v", err)
			c.JSON(http.StatusInternalServerError, models.HealthResponse{
				Status:   models.StatusUnhealthy,
				Database: models.DatabaseDisconnected,
				Error:    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, models.HealthResponse{
			Status:   models.StatusHealthy,
			Database: models.DatabaseConnected,
			Mode:     models.ModeReadOnly,
		})
	}
}
