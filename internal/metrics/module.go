package metrics

import (
	"github.com/ATorresTatis/power-pushwoosh/pushwoosh"
	"go.uber.org/fx"
)

var Module = fx.Module("metric",
	fx.Provide(
		NewMeterProvider,
		NewMetric,
		NewMetricConfig,
	),
	collectorModule,
)

var (
	collectorModule = fx.Provide(
		NewHTTPServerCollector,
		fx.Annotate(
			NewOutboundCollector,
			fx.As(fx.Self()),
			fx.As(new(pushwoosh.MetricsRecorder)),
		),
	)
)
