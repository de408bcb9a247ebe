package pushwoosh

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type countingRoundTripper struct {
	calls int32
	err   error
}

func (rt *countingRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	atomic.AddInt32(&rt.calls, 1)
	return nil, rt.err
}

type sendObservation struct {
	application string
	statusCode  int
	deviceCount int
	err         error
}

type recordingMetrics struct {
	mu           sync.Mutex
	observations []sendObservation
}

func (r *recordingMetrics) RecordSend(_ context.Context, application string, statusCode int, deviceCount int, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.observations = append(r.observations, sendObservation{
		application: application,
		statusCode:  statusCode,
		deviceCount: deviceCount,
		err:         err,
	})
}

func testSession(t *testing.T, opts ...SessionOption) *Session {
	t.Helper()

	session, err := NewSession("API-ACCESS-TOKEN", "12345-ABCDE", opts...)
	require.NoError(t, err)
	return session
}

func TestNewClient(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		client := NewClient()

		assert.Equal(t, DefaultEndpoint, client.endpoint)
		assert.Equal(t, defaultTimeout, client.httpclient.Timeout)
		assert.NotNil(t, client.logger)
		assert.Nil(t, client.metrics)
	})

	t.Run("options override defaults", func(t *testing.T) {
		httpclient := &http.Client{}
		recorder := &recordingMetrics{}

		client := NewClient(
			WithHTTPClient(httpclient),
			WithEndpoint("http://localhost:9999/createMessage"),
			WithMetrics(recorder),
		)

		assert.Same(t, httpclient, client.httpclient)
		assert.Equal(t, "http://localhost:9999/createMessage", client.endpoint)
		assert.NotNil(t, client.metrics)
	})
}

func TestNewClient_Timeout(t *testing.T) {
	t.Run("caps the default client", func(t *testing.T) {
		client := NewClient(WithTimeout(3 * time.Second))

		assert.Equal(t, 3*time.Second, client.httpclient.Timeout)
	})

	t.Run("applies in either option order", func(t *testing.T) {
		timeoutFirst := NewClient(
			WithTimeout(3*time.Second),
			WithHTTPClient(&http.Client{}),
		)
		timeoutLast := NewClient(
			WithHTTPClient(&http.Client{}),
			WithTimeout(3*time.Second),
		)

		assert.Equal(t, 3*time.Second, timeoutFirst.httpclient.Timeout)
		assert.Equal(t, 3*time.Second, timeoutLast.httpclient.Timeout)
	})

	t.Run("leaves the caller's client untouched", func(t *testing.T) {
		rt := &countingRoundTripper{}
		httpclient := &http.Client{Transport: rt}

		client := NewClient(WithHTTPClient(httpclient), WithTimeout(3*time.Second))

		assert.Zero(t, httpclient.Timeout)
		assert.NotSame(t, httpclient, client.httpclient)
		// The copy keeps the caller's transport
		assert.Same(t, rt, client.httpclient.Transport)
	})
}

func TestClient_SendMessage_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		session *Session
		content string
		devices []string
	}{
		{
			name:    "nil session",
			session: nil,
			content: "Hello World",
			devices: []string{"device-1"},
		},
		{
			name:    "empty content",
			session: testSession(t),
			content: "",
			devices: []string{"device-1"},
		},
		{
			name:    "nil device list",
			session: testSession(t),
			content: "Hello World",
			devices: nil,
		},
		{
			name:    "empty device list",
			session: testSession(t),
			content: "Hello World",
			devices: []string{},
		},
		{
			name:    "blank device token",
			session: testSession(t),
			content: "Hello World",
			devices: []string{"device-1", "", "device-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &countingRoundTripper{err: errors.New("transport must not be reached")}
			client := NewClient(WithHTTPClient(&http.Client{Transport: rt}))

			resp, err := client.SendMessage(context.Background(), tt.session, tt.content, tt.devices)

			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, resp)
			assert.Zero(t, atomic.LoadInt32(&rt.calls), "no network call may happen on invalid input")
		})
	}
}

func TestClient_SendMessage_RequestBody(t *testing.T) {
	var (
		capturedBody        []byte
		capturedMethod      string
		capturedContentType string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedMethod = r.Method
		capturedContentType = r.Header.Get("Content-Type")
		capturedBody, _ = io.ReadAll(r.Body)

		w.Write([]byte(`{"status_code":200,"status_message":"OK"}`))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL))
	session := testSession(t)

	resp, err := client.SendMessage(context.Background(), session, "Hello World", []string{"device-1", "device-2"})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.MethodPost, capturedMethod)
	assert.Equal(t, "application/json", capturedContentType)
	assert.JSONEq(t, `{
		"request": {
			"application": "12345-ABCDE",
			"auth": "API-ACCESS-TOKEN",
			"notifications": [
				{
					"send_date": "now",
					"ignore_user_timezone": true,
					"content": "Hello World",
					"devices": ["device-1", "device-2"]
				}
			]
		}
	}`, string(capturedBody))
}

func TestClient_SendMessage_ResponseRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Response
	}{
		{
			name: "successful response with nested structure",
			body: `{"status_code":200,"status_message":"OK","response":{"Messages":["3EC-61F"],"UnknownDevices":{"count":1},"valid":true}}`,
			expected: Response{
				"status_code":    float64(200),
				"status_message": "OK",
				"response": map[string]any{
					"Messages":       []any{"3EC-61F"},
					"UnknownDevices": map[string]any{"count": float64(1)},
					"valid":          true,
				},
			},
		},
		{
			name: "remote application-level error passes through as data",
			body: `{"status_code":210,"status_message":"Cannot find message: not enough devices","response":null}`,
			expected: Response{
				"status_code":    float64(210),
				"status_message": "Cannot find message: not enough devices",
				"response":       nil,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(WithEndpoint(server.URL))

			resp, err := client.SendMessage(context.Background(), testSession(t), "Hello World", []string{"device-1"})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp)
		})
	}
}

func TestClient_SendMessage_ConnectionError(t *testing.T) {
	cause := errors.New("connection reset by test")
	rt := &countingRoundTripper{err: cause}
	client := NewClient(
		WithHTTPClient(&http.Client{Transport: rt}),
		WithEndpoint("http://pushwoosh.test/json/1.3/createMessage"),
	)

	resp, err := client.SendMessage(context.Background(), testSession(t), "Hello World", []string{"device-1"})

	require.Error(t, err)
	assert.Nil(t, resp)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "http://pushwoosh.test/json/1.3/createMessage", transportErr.Endpoint)
	assert.ErrorIs(t, err, cause, "underlying cause must stay reachable unaltered")
	assert.Equal(t, int32(1), atomic.LoadInt32(&rt.calls))
}

func TestClient_SendMessage_NonOKStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"Bad Request", http.StatusBadRequest},
		{"Unauthorized", http.StatusUnauthorized},
		{"Internal Server Error", http.StatusInternalServerError},
		{"Service Unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := NewClient(WithEndpoint(server.URL))

			resp, err := client.SendMessage(context.Background(), testSession(t), "Hello World", []string{"device-1"})

			require.Error(t, err)
			assert.Nil(t, resp)

			var transportErr *TransportError
			require.ErrorAs(t, err, &transportErr)
			assert.Equal(t, tt.statusCode, transportErr.StatusCode)
			assert.NoError(t, transportErr.Unwrap())
		})
	}
}

func TestClient_SendMessage_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1 * time.Second)
		w.Write([]byte(`{"status_code":200}`))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := client.SendMessage(ctx, testSession(t), "Hello World", []string{"device-1"})

	require.Error(t, err)
	assert.Nil(t, resp)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_SendMessage_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL))

	resp, err := client.SendMessage(context.Background(), testSession(t), "Hello World", []string{"device-1"})

	require.Error(t, err)
	assert.Nil(t, resp)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, []byte("not json"), decodeErr.Body)
	assert.Error(t, decodeErr.Unwrap())
}

func TestClient_SendMessage_ProxyRouting(t *testing.T) {
	t.Run("session proxy receives the request", func(t *testing.T) {
		var proxiedRequests int32
		proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&proxiedRequests, 1)
			assert.Equal(t, "http://pushwoosh.test/json/1.3/createMessage", r.RequestURI)

			w.Write([]byte(`{"status_code":200}`))
		}))
		defer proxy.Close()

		session := testSession(t, WithProxy(proxy.URL+"/"))
		client := NewClient(WithEndpoint("http://pushwoosh.test/json/1.3/createMessage"))

		resp, err := client.SendMessage(context.Background(), session, "Hello World", []string{"device-1"})

		require.NoError(t, err)
		assert.Equal(t, Response{"status_code": float64(200)}, resp)
		assert.Equal(t, int32(1), atomic.LoadInt32(&proxiedRequests))
	})

	t.Run("malformed proxy surfaces as transport error", func(t *testing.T) {
		rt := &countingRoundTripper{err: errors.New("transport must not be reached")}
		session := testSession(t, WithProxy("://invalid-proxy"))
		client := NewClient(
			WithHTTPClient(&http.Client{Transport: rt}),
			WithEndpoint("http://pushwoosh.test/json/1.3/createMessage"),
		)

		resp, err := client.SendMessage(context.Background(), session, "Hello World", []string{"device-1"})

		require.Error(t, err)
		assert.Nil(t, resp)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Zero(t, atomic.LoadInt32(&rt.calls))
	})
}

func TestClient_SendMessage_Trace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status_code":200}`))
	}))
	defer server.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	client := NewClient(
		WithEndpoint(server.URL),
		WithLogger(zap.New(core)),
	)

	_, err := client.SendMessage(context.Background(), testSession(t), "Hello World", []string{"device-1", "device-2"})
	require.NoError(t, err)

	entries := logs.FilterMessage("sending createMessage request").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, server.URL, fields["endpoint"])
	assert.Equal(t, "12345-ABCDE", fields["application"])
	assert.EqualValues(t, 2, fields["devices"])

	body, ok := fields["body"].([]byte)
	require.True(t, ok)
	assert.Contains(t, string(body), "Hello World")
}

func TestClient_SendMessage_RecordsMetrics(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		content     string
		devices     []string
		verify      func(t *testing.T, observation sendObservation)
		expectError bool
	}{
		{
			name: "successful send",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status_code":200}`))
			},
			content: "Hello World",
			devices: []string{"device-1", "device-2"},
			verify: func(t *testing.T, observation sendObservation) {
				assert.Equal(t, "12345-ABCDE", observation.application)
				assert.Equal(t, http.StatusOK, observation.statusCode)
				assert.Equal(t, 2, observation.deviceCount)
				assert.NoError(t, observation.err)
			},
		},
		{
			name: "failed send",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			content: "Hello World",
			devices: []string{"device-1"},
			verify: func(t *testing.T, observation sendObservation) {
				assert.Equal(t, http.StatusServiceUnavailable, observation.statusCode)
				assert.Error(t, observation.err)
			},
			expectError: true,
		},
		{
			name: "rejected input with a known session",
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Error("no request expected")
			},
			content: "",
			devices: []string{"device-1"},
			verify: func(t *testing.T, observation sendObservation) {
				assert.Equal(t, "12345-ABCDE", observation.application)
				assert.Zero(t, observation.statusCode)
				assert.ErrorIs(t, observation.err, ErrInvalidArgument)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			recorder := &recordingMetrics{}
			client := NewClient(
				WithEndpoint(server.URL),
				WithMetrics(recorder),
			)

			_, err := client.SendMessage(context.Background(), testSession(t), tt.content, tt.devices)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			require.Len(t, recorder.observations, 1)
			tt.verify(t, recorder.observations[0])
		})
	}
}

func TestClient_SendMessage_Concurrent(t *testing.T) {
	var served int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&served, 1)
		w.Write([]byte(`{"status_code":200}`))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL))
	session := testSession(t)

	numSends := 10
	errs := make([]error, numSends)
	var wg sync.WaitGroup

	wg.Add(numSends)
	for i := 0; i < numSends; i++ {
		go func(index int) {
			defer wg.Done()
			_, errs[index] = client.SendMessage(context.Background(), session, "Hello World", []string{"device-1"})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(numSends), atomic.LoadInt32(&served))
}
