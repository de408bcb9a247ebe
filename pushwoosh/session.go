package pushwoosh

import (
	"fmt"
	"strings"

	"golang.org/x/net/http/httpproxy"
)

// ProxyResolver supplies a proxy server URL for sessions that have none
// configured explicitly. An empty string means direct connection.
type ProxyResolver func() (string, error)

// EnvironmentProxy resolves the proxy the host environment is already
// configured to use for outbound HTTPS traffic (HTTPS_PROXY and friends).
func EnvironmentProxy() (string, error) {
	return httpproxy.FromEnvironment().HTTPSProxy, nil
}

// Session holds the credentials and connection settings for one Pushwoosh
// application. Sessions are immutable once built and safe to share across
// any number of concurrent sends.
type Session struct {
	accessToken string
	application string
	proxyServer string
}

type sessionSettings struct {
	proxyServer   string
	proxyResolver ProxyResolver
}

type SessionOption func(*sessionSettings)

// WithProxy routes every request of the session through the given proxy
// server. A single trailing slash is stripped. An empty value is ignored.
func WithProxy(server string) SessionOption {
	return func(s *sessionSettings) {
		s.proxyServer = server
	}
}

// WithProxyResolver sets the fallback strategy used to discover a proxy when
// none is configured explicitly. Resolution is best-effort: a resolver
// failure leaves the session without a proxy.
func WithProxyResolver(resolver ProxyResolver) SessionOption {
	return func(s *sessionSettings) {
		s.proxyResolver = resolver
	}
}

// NewSession validates the credentials and builds a session descriptor. No
// network activity happens here.
func NewSession(accessToken, application string, opts ...SessionOption) (*Session, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("api access token must not be empty: %w", ErrInvalidArgument)
	}
	if application == "" {
		return nil, fmt.Errorf("application code must not be empty: %w", ErrInvalidArgument)
	}

	var settings sessionSettings
	for _, opt := range opts {
		opt(&settings)
	}

	proxyServer := settings.proxyServer
	if proxyServer == "" && settings.proxyResolver != nil {
		if resolved, err := settings.proxyResolver(); err == nil {
			proxyServer = resolved
		}
	}

	return &Session{
		accessToken: accessToken,
		application: application,
		proxyServer: strings.TrimSuffix(proxyServer, "/"),
	}, nil
}

// AccessToken returns the API access token.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// Application returns the application code.
func (s *Session) Application() string {
	return s.application
}

// Proxy returns the normalized proxy server URL, empty for direct
// connections.
func (s *Session) Proxy() string {
	return s.proxyServer
}

// String renders the session for diagnostics with the credential redacted.
func (s *Session) String() string {
	return fmt.Sprintf("application=%s auth=%s proxy=%s",
		s.application, redactToken(s.accessToken), s.proxyServer)
}

func redactToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + "****"
}
