package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"wildsafari/pkg/utils"
)

type MaintenanceChecker interface {
	InMaintenance(ctx context.Context) bool
}

// MaintenanceMiddleware rejects requests while the site is in maintenance mode.
// Attach it only to public write routes.
func MaintenanceMiddleware(checker MaintenanceChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checker.InMaintenance(c.Request.Context()) {
			utils.RespondError(c, http.StatusServiceUnavailable, "The site is under maintenance, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
