package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"web3dir/models"
)

// ReadOnly rejects every method except GET, HEAD and OPTIONS on paths under
// prefix. It must be installed on the engine, not a group, so that it also
// sees requests for which no route is registered.
func ReadOnly(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, prefix) {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			c.Header("Allow", "GET, HEAD, OPTIONS")
			c.AbortWithStatusJSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "read-only API"})
		}
	}
}
