package testutil

import (
	"sync"
	"time"

	"github.com/yungbote/propdesk-backend/internal/data/aggregates"
)

// HooksRecorder captures dispatch hook signals in tests.
type HooksRecorder struct {
	mu sync.Mutex

	Operations []OperationEvent
	Payments   []PaymentEvent
}

type OperationEvent struct {
	Kind     string
	Op       string
	Status   string
	Duration time.Duration
}

type PaymentEvent struct {
	Kind   string
	Status string
}

var _ aggregates.Hooks = (*HooksRecorder)(nil)

func (h *HooksRecorder) ObserveOperation(kind, op, status string, dur time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Operations = append(h.Operations, OperationEvent{
		Kind:     kind,
		Op:       op,
		Status:   status,
		Duration: dur,
	})
}

func (h *HooksRecorder) IncPaymentInit(kind, status string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Payments = append(h.Payments, PaymentEvent{Kind: kind, Status: status})
}

// Statuses returns the recorded operation statuses in order.
func (h *HooksRecorder) Statuses() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.Operations))
	for _, ev := range h.Operations {
		out = append(out, ev.Status)
	}
	return out
}
