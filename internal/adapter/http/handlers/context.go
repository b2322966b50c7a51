package handlers

import (
	"mobiplan/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

// OwnerID returns the authenticated owner id placed in the context by the
// auth middleware. Handlers pass it down explicitly; nothing below the
// adapter layer reads the gin context.
func OwnerID(c *gin.Context) string {
	return c.GetString(middleware.OwnerKey)
}
