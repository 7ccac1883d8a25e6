package aggregates

import (
	"strings"
	"time"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/observability"
)

// Hooks captures dispatch-level observability events.
type Hooks interface {
	ObserveOperation(kind, op, status string, dur time.Duration)
	IncPaymentInit(kind, status string)
}

type noopHooks struct{}

func (noopHooks) ObserveOperation(string, string, string, time.Duration) {}
func (noopHooks) IncPaymentInit(string, string)                          {}

// NoopHooks discards every event.
func NoopHooks() Hooks { return noopHooks{} }

type observabilityHooks struct {
	metrics *observability.Metrics
}

// NewObservabilityHooks creates hooks backed by observability metrics.
func NewObservabilityHooks(metrics *observability.Metrics) Hooks {
	if metrics == nil {
		return noopHooks{}
	}
	return &observabilityHooks{metrics: metrics}
}

func (h *observabilityHooks) ObserveOperation(kind, op, status string, dur time.Duration) {
	if h == nil || h.metrics == nil {
		return
	}
	h.metrics.ObserveDispatch(strings.TrimSpace(kind), strings.TrimSpace(op), strings.TrimSpace(status), dur)
}

func (h *observabilityHooks) IncPaymentInit(kind, status string) {
	if h == nil || h.metrics == nil {
		return
	}
	h.metrics.IncPaymentInit(strings.TrimSpace(kind), strings.TrimSpace(status))
}

// StatusOf turns an operation result into a metrics status label.
func StatusOf(err error) string {
	if err == nil {
		return "success"
	}
	if code := entity.CodeOf(err); code != "" {
		return string(code)
	}
	return "failure"
}
