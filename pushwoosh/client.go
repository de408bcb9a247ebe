// Package pushwoosh implements a thin client for the Pushwoosh
// createMessage API: one HTTP request per send, no retries, no state kept
// between calls.
package pushwoosh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultEndpoint is the createMessage endpoint of the Pushwoosh API.
const DefaultEndpoint = "https://cp.pushwoosh.com/json/1.3/createMessage"

const defaultTimeout = 10 * time.Second

//go:generate mockgen -package mockpushwoosh -destination ./mock/mockpushwoosh.go . MessageSender
type MessageSender interface {
	SendMessage(ctx context.Context, session *Session, content string, devices []string) (Response, error)
}

var _ MessageSender = (*Client)(nil)

// MetricsRecorder receives one observation per send attempt. Implementations
// must tolerate concurrent calls.
type MetricsRecorder interface {
	RecordSend(ctx context.Context, application string, statusCode int, deviceCount int, duration time.Duration, err error)
}

// Client sends createMessage requests. One client serves any number of
// sessions concurrently.
type Client struct {
	httpclient *http.Client
	endpoint   string
	timeout    time.Duration
	logger     *zap.Logger
	metrics    MetricsRecorder
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpclient *http.Client) Option {
	return func(c *Client) {
		c.httpclient = httpclient
	}
}

// WithEndpoint overrides the API endpoint. Intended for tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout caps the total duration of one send, regardless of which HTTP
// client the other options select. A caller-supplied client is copied, never
// mutated.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the diagnostic trace sink. The default discards traces.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics sets the recorder notified about every send attempt.
func WithMetrics(recorder MetricsRecorder) Option {
	return func(c *Client) {
		c.metrics = recorder
	}
}

func NewClient(opts ...Option) *Client {
	client := &Client{
		httpclient: &http.Client{
			Timeout: defaultTimeout,
		},
		endpoint: DefaultEndpoint,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.timeout > 0 {
		httpclient := *client.httpclient
		httpclient.Timeout = client.timeout
		client.httpclient = &httpclient
	}

	return client
}

// SendMessage delivers one notification with the given content to the listed
// device tokens and returns the decoded API response unmodified. Arguments
// are validated before any network activity; a failed call performs no
// retry.
func (c *Client) SendMessage(ctx context.Context, session *Session, content string, devices []string) (Response, error) {
	start := time.Now()

	if err := validateSendArgs(session, content, devices); err != nil {
		if session != nil {
			c.record(ctx, session.Application(), 0, len(devices), time.Since(start), err)
		}
		return nil, err
	}

	body, err := json.Marshal(newCreateMessageRequest(session, content, devices))
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	c.logger.Debug("sending createMessage request",
		zap.String("endpoint", c.endpoint),
		zap.String("application", session.Application()),
		zap.Int("devices", len(devices)),
		zap.ByteString("body", body),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpclient := c.httpclient
	if proxyServer := session.Proxy(); proxyServer != "" {
		proxyURL, err := url.Parse(proxyServer)
		if err != nil {
			transportErr := &TransportError{Endpoint: c.endpoint, Err: err}
			c.record(ctx, session.Application(), 0, len(devices), time.Since(start), transportErr)
			return nil, transportErr
		}

		transport := baseTransport(c.httpclient).Clone()
		transport.Proxy = http.ProxyURL(proxyURL)
		defer transport.CloseIdleConnections()

		derived := *c.httpclient
		derived.Transport = transport
		httpclient = &derived
	}

	resp, err := httpclient.Do(req)
	if err != nil {
		transportErr := &TransportError{Endpoint: c.endpoint, Err: err}
		c.record(ctx, session.Application(), 0, len(devices), time.Since(start), transportErr)
		return nil, transportErr
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		transportErr := &TransportError{Endpoint: c.endpoint, Err: err}
		c.record(ctx, session.Application(), resp.StatusCode, len(devices), time.Since(start), transportErr)
		return nil, transportErr
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		transportErr := &TransportError{Endpoint: c.endpoint, StatusCode: resp.StatusCode}
		c.record(ctx, session.Application(), resp.StatusCode, len(devices), time.Since(start), transportErr)
		return nil, transportErr
	}

	var decoded Response
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		decodeErr := &DecodeError{Body: rawBody, Err: err}
		c.record(ctx, session.Application(), resp.StatusCode, len(devices), time.Since(start), decodeErr)
		return nil, decodeErr
	}

	c.record(ctx, session.Application(), resp.StatusCode, len(devices), time.Since(start), nil)

	return decoded, nil
}

func (c *Client) record(ctx context.Context, application string, statusCode int, deviceCount int, duration time.Duration, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordSend(ctx, application, statusCode, deviceCount, duration, err)
}

func validateSendArgs(session *Session, content string, devices []string) error {
	if session == nil {
		return fmt.Errorf("session must not be nil: %w", ErrInvalidArgument)
	}
	if content == "" {
		return fmt.Errorf("message content must not be empty: %w", ErrInvalidArgument)
	}
	if len(devices) == 0 {
		return fmt.Errorf("device token list must not be empty: %w", ErrInvalidArgument)
	}
	for i, device := range devices {
		if device == "" {
			return fmt.Errorf("device token at index %d must not be empty: %w", i, ErrInvalidArgument)
		}
	}
	return nil
}

func baseTransport(httpclient *http.Client) *http.Transport {
	if transport, ok := httpclient.Transport.(*http.Transport); ok {
		return transport
	}
	return http.DefaultTransport.(*http.Transport)
}
