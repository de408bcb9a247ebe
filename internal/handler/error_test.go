package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRequestError(t *testing.T) {
	tests := []struct {
		name              string
		inputError        error
		expectedErrorCode string
		expectedMessage   string
	}{
		{
			name:              "wraps error with E101 code",
			inputError:        errors.New("invalid request format"),
			expectedErrorCode: "E101",
			expectedMessage:   "invalid request format",
		},
		{
			name:              "wraps error with empty message",
			inputError:        errors.New(""),
			expectedErrorCode: "E101",
			expectedMessage:   "",
		},
		{
			name:              "wraps binding validation error",
			inputError:        errors.New("Key: 'SendMessageRequest.Content' Error:Field validation for 'Content' failed on the 'required' tag"),
			expectedErrorCode: "E101",
			expectedMessage:   "Key: 'SendMessageRequest.Content' Error:Field validation for 'Content' failed on the 'required' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetRequestError(tt.inputError)

			assert.NotNil(t, result)

			// Type assert to ErrorHandler
			errorHandler, ok := result.(*ErrorHandler)
			assert.True(t, ok, "Expected result to be *ErrorHandler")

			// Verify error code
			assert.Equal(t, tt.expectedErrorCode, errorHandler.ErrorCode)

			// Verify message
			assert.Equal(t, tt.expectedMessage, errorHandler.Message)
		})
	}
}

func TestGetInternalError(t *testing.T) {
	tests := []struct {
		name              string
		inputError        error
		expectedErrorCode string
		expectedMessage   string
	}{
		{
			name:              "wraps error with E102 code",
			inputError:        errors.New("database connection error"),
			expectedErrorCode: "E102",
			expectedMessage:   "database connection error",
		},
		{
			name:              "wraps service unavailable error",
			inputError:        errors.New("service unavailable"),
			expectedErrorCode: "E102",
			expectedMessage:   "service unavailable",
		},
		{
			name:              "wraps empty error message",
			inputError:        errors.New(""),
			expectedErrorCode: "E102",
			expectedMessage:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetInternalError(tt.inputError)

			assert.NotNil(t, result)

			// Type assert to ErrorHandler
			errorHandler, ok := result.(*ErrorHandler)
			assert.True(t, ok, "Expected result to be *ErrorHandler")

			// Verify error code
			assert.Equal(t, tt.expectedErrorCode, errorHandler.ErrorCode)

			// Verify message
			assert.Equal(t, tt.expectedMessage, errorHandler.Message)
		})
	}
}

func TestGetUnknownApplicationError(t *testing.T) {
	tests := []struct {
		name              string
		inputError        error
		expectedErrorCode string
		expectedMessage   string
	}{
		{
			name:              "wraps error with E103 code",
			inputError:        errors.New("unknown application alias"),
			expectedErrorCode: "E103",
			expectedMessage:   "unknown application alias",
		},
		{
			name:              "wraps empty error message",
			inputError:        errors.New(""),
			expectedErrorCode: "E103",
			expectedMessage:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUnknownApplicationError(tt.inputError)

			assert.NotNil(t, result)

			errorHandler, ok := result.(*ErrorHandler)
			assert.True(t, ok, "Expected result to be *ErrorHandler")

			assert.Equal(t, tt.expectedErrorCode, errorHandler.ErrorCode)
			assert.Equal(t, tt.expectedMessage, errorHandler.Message)
		})
	}
}

func TestGetUpstreamError(t *testing.T) {
	tests := []struct {
		name              string
		inputError        error
		expectedErrorCode string
		expectedMessage   string
	}{
		{
			name:              "wraps error with E104 code",
			inputError:        errors.New("request to https://cp.pushwoosh.com/json/1.3/createMessage failed with status code 503"),
			expectedErrorCode: "E104",
			expectedMessage:   "request to https://cp.pushwoosh.com/json/1.3/createMessage failed with status code 503",
		},
		{
			name:              "wraps circuit breaker error",
			inputError:        errors.New("circuit breaker is open"),
			expectedErrorCode: "E104",
			expectedMessage:   "circuit breaker is open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUpstreamError(tt.inputError)

			assert.NotNil(t, result)

			errorHandler, ok := result.(*ErrorHandler)
			assert.True(t, ok, "Expected result to be *ErrorHandler")

			assert.Equal(t, tt.expectedErrorCode, errorHandler.ErrorCode)
			assert.Equal(t, tt.expectedMessage, errorHandler.Message)
		})
	}
}

func TestErrorHandler_Error(t *testing.T) {
	tests := []struct {
		name           string
		errorCode      string
		message        string
		expectedString string
	}{
		{
			name:           "formats E101 error correctly",
			errorCode:      "E101",
			message:        "invalid request",
			expectedString: "error code: E101, message: invalid request",
		},
		{
			name:           "formats E104 error correctly",
			errorCode:      "E104",
			message:        "upstream failure",
			expectedString: "error code: E104, message: upstream failure",
		},
		{
			name:           "formats error with empty message",
			errorCode:      "E101",
			message:        "",
			expectedString: "error code: E101, message: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errorHandler := &ErrorHandler{
				ErrorCode: tt.errorCode,
				Message:   tt.message,
			}

			result := errorHandler.Error()

			assert.Equal(t, tt.expectedString, result)
		})
	}
}

func TestErrorHandler_ErrorImplementsErrorInterface(t *testing.T) {
	t.Run("ErrorHandler implements error interface", func(t *testing.T) {
		var err error = &ErrorHandler{
			ErrorCode: "E101",
			Message:   "test error",
		}

		assert.NotNil(t, err)
		assert.Equal(t, "error code: E101, message: test error", err.Error())
	})
}

func TestGetRequestError_PreservesOriginalError(t *testing.T) {
	t.Run("preserves original error message exactly", func(t *testing.T) {
		originalErr := errors.New("original error message with special characters: !@#$%^&*()")

		result := GetRequestError(originalErr)
		errorHandler := result.(*ErrorHandler)

		assert.Equal(t, "original error message with special characters: !@#$%^&*()", errorHandler.Message)
	})
}
