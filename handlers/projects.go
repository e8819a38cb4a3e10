package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"web3dir/models"
)

// ListProjects serves GET /api/projects: every project, newest date first.
func ListProjects(store ProjectLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		projects, err := store.ListProjects(ctx)
		if err != nil {
			log.Printf("Error GET /api/projects: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

// ListTags serves GET /api/tags: the distinct tags in ascending order.
func ListTags(store TagLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		tags, err := store.ListTags(ctx)
		if err != nil {
			log.Printf("Error GET /api/tags: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, tags)
	}
}
