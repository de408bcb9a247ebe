package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/ATorresTatis/power-pushwoosh/pushwoosh"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// OutboundCollector observes createMessage sends and the per-application
// circuit breakers guarding them.
type OutboundCollector struct {
	sendCount             metric.Int64Counter
	sendDuration          metric.Float64Histogram
	deviceCount           metric.Int64Histogram
	errorCount            metric.Int64Counter
	circuitBreakerState   metric.Int64Gauge
	circuitBreakerChanges metric.Int64Counter
}

var _ pushwoosh.MetricsRecorder = (*OutboundCollector)(nil)

func NewOutboundCollector(meter metric.Meter) (*OutboundCollector, error) {
	// If meter is nil, use noop meter from OpenTelemetry
	// The noop meter never returns errors, so this is safe
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("noop")
	}
	sendCount, err := meter.Int64Counter(
		"push.outbound.requests",
		metric.WithDescription("Total createMessage requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	sendDuration, err := meter.Float64Histogram(
		"push.outbound.duration",
		metric.WithDescription("createMessage request duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	deviceCount, err := meter.Int64Histogram(
		"push.outbound.devices",
		metric.WithDescription("Device tokens addressed per send"),
		metric.WithUnit("{device}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"push.outbound.errors",
		metric.WithDescription("Total failed sends"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	circuitBreakerState, err := meter.Int64Gauge(
		"push.outbound.circuit_breaker.state",
		metric.WithDescription("Circuit breaker state (0=Closed, 1=Open, 2=HalfOpen)"),
		metric.WithUnit("{state}"),
	)
	if err != nil {
		return nil, err
	}

	circuitBreakerChanges, err := meter.Int64Counter(
		"push.outbound.circuit_breaker.state_changes",
		metric.WithDescription("Circuit breaker state changes"),
		metric.WithUnit("{change}"),
	)
	if err != nil {
		return nil, err
	}

	return &OutboundCollector{
		sendCount:             sendCount,
		sendDuration:          sendDuration,
		deviceCount:           deviceCount,
		errorCount:            errorCount,
		circuitBreakerState:   circuitBreakerState,
		circuitBreakerChanges: circuitBreakerChanges,
	}, nil
}

// RecordSend records the outcome of one createMessage attempt.
func (c *OutboundCollector) RecordSend(
	ctx context.Context,
	application string,
	statusCode int,
	deviceCount int,
	duration time.Duration,
	err error,
) {
	attrs := []attribute.KeyValue{
		attribute.String("pushwoosh.application", application),
		attribute.Int("http.status_code", statusCode),
	}

	c.sendCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	c.sendDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	c.deviceCount.Record(ctx, int64(deviceCount), metric.WithAttributes(
		attribute.String("pushwoosh.application", application),
	))

	if err != nil {
		errorAttrs := []attribute.KeyValue{
			attribute.String("pushwoosh.application", application),
			attribute.String("error.type", getErrorType(err)),
		}
		c.errorCount.Add(ctx, 1, metric.WithAttributes(errorAttrs...))
	}
}

// RecordRefusal counts a send the circuit breaker refused. Refused sends
// never reach the client, so RecordSend never sees them.
func (c *OutboundCollector) RecordRefusal(
	ctx context.Context,
	application string,
	err error,
) {
	attrs := []attribute.KeyValue{
		attribute.String("pushwoosh.application", application),
		attribute.String("error.type", getErrorType(err)),
	}

	c.errorCount.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordCircuitBreakerState records the current circuit breaker state
func (c *OutboundCollector) RecordCircuitBreakerState(
	ctx context.Context,
	application string,
	state string,
) {
	attrs := []attribute.KeyValue{
		attribute.String("pushwoosh.application", application),
		attribute.String("circuit_breaker.state", state),
	}

	stateValue := circuitBreakerStateToInt(state)
	c.circuitBreakerState.Record(ctx, stateValue, metric.WithAttributes(attrs...))
}

// RecordCircuitBreakerStateChange records circuit breaker state transitions
func (c *OutboundCollector) RecordCircuitBreakerStateChange(
	ctx context.Context,
	application string,
	fromState string,
	toState string,
) {
	attrs := []attribute.KeyValue{
		attribute.String("pushwoosh.application", application),
		attribute.String("circuit_breaker.from_state", fromState),
		attribute.String("circuit_breaker.to_state", toState),
	}

	c.circuitBreakerChanges.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// circuitBreakerStateToInt converts circuit breaker state to numeric value
func circuitBreakerStateToInt(state string) int64 {
	switch state {
	case "closed":
		return 0
	case "open":
		return 1
	case "half-open":
		return 2
	default:
		return -1
	}
}

// getErrorType classifies a failed send by the client error taxonomy.
func getErrorType(err error) string {
	if err == nil {
		return "none"
	}

	var (
		transportErr *pushwoosh.TransportError
		decodeErr    *pushwoosh.DecodeError
	)

	switch {
	case errors.Is(err, pushwoosh.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_breaker_open"
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &decodeErr):
		return "decode"
	default:
		return "unknown"
	}
}
