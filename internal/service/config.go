package service

import (
	"fmt"

	"github.com/ATorresTatis/power-pushwoosh/pushwoosh"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config holds the Pushwoosh account settings. Applications maps the alias
// used in the API path to the Pushwoosh application code, e.g.
// PUSHWOOSH_APPLICATIONS="orders:12345-ABCDE,alerts:67890-FGHIJ".
type Config struct {
	AccessToken  string            `envconfig:"PUSHWOOSH_ACCESS_TOKEN" required:"true"`
	Applications map[string]string `envconfig:"PUSHWOOSH_APPLICATIONS" required:"true"`
	ProxyServer  string            `envconfig:"PUSHWOOSH_PROXY_SERVER"`
}

func NewConfig() Config {
	var cfg Config
	envconfig.MustProcess("", &cfg)

	return cfg
}

// Sessions holds one immutable Pushwoosh session per application alias,
// built once at startup and shared by every send.
type Sessions map[string]*pushwoosh.Session

type SessionsParams struct {
	fx.In

	Config Config
	Logger *zap.Logger
}

func NewSessions(params SessionsParams) (Sessions, error) {
	sessions := make(Sessions, len(params.Config.Applications))

	for alias, code := range params.Config.Applications {
		session, err := pushwoosh.NewSession(
			params.Config.AccessToken,
			code,
			pushwoosh.WithProxy(params.Config.ProxyServer),
			pushwoosh.WithProxyResolver(pushwoosh.EnvironmentProxy),
		)
		if err != nil {
			return nil, fmt.Errorf("build session for application '%s': %w", alias, err)
		}

		params.Logger.Debug("pushwoosh session ready",
			zap.String("alias", alias),
			zap.Stringer("session", session),
		)
		sessions[alias] = session
	}

	return sessions, nil
}
