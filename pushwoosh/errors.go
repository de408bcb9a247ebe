package pushwoosh

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports input rejected before any network activity.
var ErrInvalidArgument = errors.New("invalid argument")

// TransportError reports a failure to complete the HTTP exchange with the
// API host: connection, TLS, proxy or timeout failures, or a non-2xx status.
type TransportError struct {
	Endpoint string

	// StatusCode is set when the remote answered with a non-2xx status.
	StatusCode int

	// Err is the underlying cause for network-level failures, nil when the
	// failure is a non-2xx status.
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("request to %s failed with status code %d", e.Endpoint, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not valid JSON. Body holds the
// raw payload as received.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response body: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
