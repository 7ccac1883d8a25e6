package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/propdesk-backend/internal/platform/ctxutil"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
)

func TestAttachTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen *ctxutil.TraceData
	r := gin.New()
	r.Use(AttachTraceContext(), RequestLogger(logger.Nop()), Metrics(nil))
	r.GET("/api/:entity", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/owner", nil)
	req.Header.Set(headerRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen == nil {
		t.Fatalf("trace data not attached")
	}
	if seen.RequestID != "req-123" {
		t.Fatalf("request id = %q", seen.RequestID)
	}
	if seen.TraceID == "" {
		t.Fatalf("trace id not generated")
	}
	if got := rec.Header().Get(headerTraceID); got != seen.TraceID {
		t.Fatalf("trace header = %q, want %q", got, seen.TraceID)
	}
	if got := rec.Header().Get(headerRequestID); got != "req-123" {
		t.Fatalf("request header = %q", got)
	}
}

func TestAttachTraceContextKeepsCallerTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen *ctxutil.TraceData
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerTraceID, "trace-abc")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if seen == nil || seen.TraceID != "trace-abc" {
		t.Fatalf("trace data = %+v", seen)
	}
	if seen.RequestID == "" {
		t.Fatalf("request id not generated")
	}
}

func TestCorrelationID(t *testing.T) {
	if got := correlationID("  req-1 "); got != "req-1" {
		t.Fatalf("trimmed id = %q", got)
	}
	for _, raw := range []string{"", "   ", strings.Repeat("x", maxCorrelationIDLen+1), "bad\x00id"} {
		got := correlationID(raw)
		if got == strings.TrimSpace(raw) || len(got) != 36 {
			t.Fatalf("correlationID(%q) = %q, want a fresh uuid", raw, got)
		}
	}
}

func TestKindLabel(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"tenant":          "Tenant",
		"CONTRACTPAYMENT": "Contractpayment",
		"landlord":        "unrecognized",
	}
	for in, want := range cases {
		if got := kindLabel(in); got != want {
			t.Fatalf("kindLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
