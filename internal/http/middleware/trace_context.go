package middleware

import (
	"context"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/propdesk-backend/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"

	maxCorrelationIDLen = 128
)

// AttachTraceContext stamps every request with a request id and a trace id
// and echoes both back as response headers. The trace id of an active span
// wins over the caller's header so log lines match exported traces.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		td := &ctxutil.TraceData{
			RequestID: correlationID(c.GetHeader(headerRequestID)),
			TraceID:   spanTraceID(ctx),
		}
		if td.TraceID == "" {
			td.TraceID = correlationID(c.GetHeader(headerTraceID))
		}
		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.SetAttributes(attribute.String("propdesk.request_id", td.RequestID))
			if name := c.Param("entity"); name != "" {
				span.SetAttributes(attribute.String("propdesk.entity", name))
			}
		}

		c.Request = c.Request.WithContext(ctxutil.WithTraceData(ctx, td))
		c.Writer.Header().Set(headerTraceID, td.TraceID)
		c.Writer.Header().Set(headerRequestID, td.RequestID)
		c.Next()
	}
}

func spanTraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

// correlationID keeps a caller-supplied id when it is short and printable and
// mints a fresh one otherwise.
func correlationID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > maxCorrelationIDLen {
		return uuid.NewString()
	}
	if strings.IndexFunc(id, func(r rune) bool { return !unicode.IsPrint(r) }) >= 0 {
		return uuid.NewString()
	}
	return id
}
