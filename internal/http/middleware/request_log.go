package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/propdesk-backend/internal/platform/ctxutil"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"bytes", c.Writer.Size(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if kind := kindLabel(c.Param("entity")); kind != "" {
			fields = append(fields, "kind", kind)
		}
		if id := c.Param("id"); id != "" {
			fields = append(fields, "entity_id", id)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}
		fields = append(fields, ctxutil.LogFields(c.Request.Context())...)

		switch {
		case path == "/healthcheck" && status < 400:
			log.Debug("HTTP request", fields...)
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
