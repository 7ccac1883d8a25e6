package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/yungbote/propdesk-backend/dispatch"

// Metrics holds the dispatch instruments. They record against the global
// meter provider, which is a no-op until an SDK provider is installed.
type Metrics struct {
	operations  metric.Int64Counter
	latency     metric.Float64Histogram
	paymentInit metric.Int64Counter

	apiRequests metric.Int64Counter
	apiLatency  metric.Float64Histogram
}

func NewMetrics() (*Metrics, error) {
	return NewMetricsWithProvider(otel.GetMeterProvider())
}

func NewMetricsWithProvider(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)
	operations, err := meter.Int64Counter(
		"dispatch.operations",
		metric.WithDescription("Dispatched entity operations by kind, operation and status."),
	)
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram(
		"dispatch.duration",
		metric.WithDescription("Dispatched entity operation latency."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}
	paymentInit, err := meter.Int64Counter(
		"dispatch.payment_initializations",
		metric.WithDescription("Payment account initializations triggered by updates."),
	)
	if err != nil {
		return nil, err
	}
	apiRequests, err := meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("HTTP requests by method, route, entity kind and status."),
	)
	if err != nil {
		return nil, err
	}
	apiLatency, err := meter.Float64Histogram(
		"http.server.duration",
		metric.WithDescription("HTTP request latency."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}
	return &Metrics{
		operations:  operations,
		latency:     latency,
		paymentInit: paymentInit,
		apiRequests: apiRequests,
		apiLatency:  apiLatency,
	}, nil
}

func (m *Metrics) ObserveDispatch(kind, op, status string, dur time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("op", op),
		attribute.String("status", status),
	)
	ctx := context.Background()
	m.operations.Add(ctx, 1, attrs)
	m.latency.Record(ctx, float64(dur.Microseconds())/1000, attrs)
}

func (m *Metrics) IncPaymentInit(kind, status string) {
	if m == nil {
		return
	}
	m.paymentInit.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("status", status),
	))
}

// ObserveAPI records one HTTP request. kind is the canonical entity name the
// route addressed, or "" for routes without one.
func (m *Metrics) ObserveAPI(method, route, kind, status string, dur time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.String("kind", kind),
		attribute.String("status", status),
	)
	ctx := context.Background()
	m.apiRequests.Add(ctx, 1, attrs)
	m.apiLatency.Record(ctx, float64(dur.Microseconds())/1000, attrs)
}
