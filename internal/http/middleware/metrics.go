package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/observability"
)

// Metrics records request counts and latency per route and entity kind.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.ObserveAPI(c.Request.Method, route, kindLabel(c.Param("entity")), strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// kindLabel keeps the label set closed: anything that is not a known entity
// name collapses to "unrecognized".
func kindLabel(name string) string {
	if name == "" {
		return ""
	}
	k, err := entity.ParseKind(name)
	if err != nil {
		return "unrecognized"
	}
	return k.String()
}
