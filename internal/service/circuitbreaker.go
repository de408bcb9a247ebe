package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ATorresTatis/power-pushwoosh/internal/metrics"
	"github.com/ATorresTatis/power-pushwoosh/pushwoosh"
	"github.com/kelseyhightower/envconfig"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/fx"
)

// CircuitBreakerRegistry keeps one breaker per application alias so a
// misbehaving application cannot block sends for the others. The breaker
// lives in the service layer only; the pushwoosh client itself performs
// exactly one attempt per call.
type CircuitBreakerRegistry struct {
	breakers *sync.Map
	settings gobreaker.Settings
}

type CircuitBreakerRegistryParams struct {
	fx.In

	Config           CircuitBreakerRegistryConfig
	MetricsCollector *metrics.OutboundCollector
}

func NewCircuitBreakerRegistry(params CircuitBreakerRegistryParams) *CircuitBreakerRegistry {
	settings := gobreaker.Settings{
		MaxRequests: params.Config.MaxHalfOpenRequests,
		Timeout:     params.Config.OpenStateTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= params.Config.MinRequestsBeforeTrip &&
				failureRatio >= (params.Config.FailureThresholdPercent/100)
		},
		IsSuccessful: func(err error) bool {
			// Rejected input never reached the API host and does not
			// count as a delivery failure.
			return err == nil || errors.Is(err, pushwoosh.ErrInvalidArgument)
		},
	}

	if params.MetricsCollector != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			params.MetricsCollector.RecordCircuitBreakerStateChange(
				context.Background(), name, from.String(), to.String())
		}
	}

	return &CircuitBreakerRegistry{
		breakers: &sync.Map{},
		settings: settings,
	}
}

type CircuitBreakerRegistryConfig struct {
	MaxHalfOpenRequests     uint32        `envconfig:"CIRCUIT_BREAKER_MAX_HALF_OPEN_REQUESTS" default:"5"`
	OpenStateTimeout        time.Duration `envconfig:"CIRCUIT_BREAKER_OPEN_STATE_TIMEOUT" default:"60s"`
	MinRequestsBeforeTrip   uint32        `envconfig:"CIRCUIT_BREAKER_MIN_REQUESTS_BEFORE_TRIP" default:"3"`
	FailureThresholdPercent float64       `envconfig:"CIRCUIT_BREAKER_FAILURE_THRESHOLD_PERCENT" default:"60"`
}

func NewCircuitBreakerRegistryConfig() CircuitBreakerRegistryConfig {
	var cfg CircuitBreakerRegistryConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

func (r *CircuitBreakerRegistry) GetOrCreate(application string) *gobreaker.CircuitBreaker[pushwoosh.Response] {
	if cb, ok := r.breakers.Load(application); ok {
		return cb.(*gobreaker.CircuitBreaker[pushwoosh.Response])
	}

	settings := r.settings
	settings.Name = application

	cb := gobreaker.NewCircuitBreaker[pushwoosh.Response](settings)

	actual, _ := r.breakers.LoadOrStore(application, cb)
	return actual.(*gobreaker.CircuitBreaker[pushwoosh.Response])
}
