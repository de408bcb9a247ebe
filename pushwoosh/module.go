package pushwoosh

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("pushwoosh",
	fx.Provide(
		fx.Annotate(
			newModuleClient,
			fx.As(new(MessageSender)),
		),
		NewClientConfig,
	),
)

type ClientConfig struct {
	Timeout time.Duration `envconfig:"PUSHWOOSH_HTTP_TIMEOUT" default:"10s"`
}

func NewClientConfig() ClientConfig {
	var cfg ClientConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

type ClientParams struct {
	fx.In

	Config  ClientConfig
	Logger  *zap.Logger
	Metrics MetricsRecorder
}

func newModuleClient(params ClientParams) *Client {
	return NewClient(
		WithTimeout(params.Config.Timeout),
		WithLogger(params.Logger),
		WithMetrics(params.Metrics),
	)
}
