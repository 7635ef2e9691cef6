package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wildsafari/pkg/logger"
	"wildsafari/pkg/utils"
)

func LoggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		log.LogRequest(c.Request.Method, path, c.ClientIP(), c.GetString("trace_id"),
			c.Writer.Status(), time.Since(start).Milliseconds())
	}
}

func RecoveryMiddleware(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithFields(logger.Fields{
			"panic":    recovered,
			"path":     c.Request.URL.Path,
			"trace_id": c.GetString("trace_id"),
		}).Error("Panic recovered")
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
	})
}
