package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError_Error(t *testing.T) {
	// Test error without cause
	err := New(ErrorTypeInvalidArgument, "test_op", "test message")
	expected := "[invalid_argument] test_op: test message"
	assert.Equal(t, expected, err.Error())

	// Test error with cause
	cause := errors.New("underlying error")
	err = Wrap(cause, ErrorTypeStorage, "save_op", "failed to save")
	assert.Contains(t, err.Error(), "[storage] save_op: failed to save")
	assert.Contains(t, err.Error(), "underlying error")
	assert.Equal(t, cause, err.Unwrap())
}

func TestStructuredError_WithContext(t *testing.T) {
	err := New(ErrorTypeNotFound, "test_op", "test message")
	err = err.WithContext("handle", 123).WithContext("capacity", 10)

	assert.Equal(t, 123, err.Context["handle"])
	assert.Equal(t, 10, err.Context["capacity"])
}

func TestStructuredError_WithContextNilMap(t *testing.T) {
	err := &StructuredError{Type: ErrorTypeEmpty}
	err.WithContext("size", 0)
	assert.Equal(t, 0, err.Context["size"])
}

func TestErrorWrapping(t *testing.T) {
	sentinel := errors.New("sentinel")

	tests := []struct {
		name string
		wrap func(error, string, string) *StructuredError
		want ErrorType
	}{
		{"out of range", WrapOutOfRange, ErrorTypeOutOfRange},
		{"duplicate key", WrapDuplicateKey, ErrorTypeDuplicateKey},
		{"not found", WrapNotFound, ErrorTypeNotFound},
		{"empty", WrapEmpty, ErrorTypeEmpty},
		{"invalid argument", WrapInvalidArgument, ErrorTypeInvalidArgument},
		{"unsupported", WrapUnsupported, ErrorTypeUnsupported},
		{"configuration", WrapConfigurationError, ErrorTypeConfiguration},
		{"storage", WrapStorageError, ErrorTypeStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := tt.wrap(sentinel, "op", "msg")
			assert.Equal(t, tt.want, wrapped.Type)
			assert.Equal(t, "op", wrapped.Operation)
			assert.Equal(t, "msg", wrapped.Message)
			assert.ErrorIs(t, wrapped, sentinel)
		})
	}

	// Test that Wrap returns nil for nil error
	assert.Nil(t, Wrap(nil, ErrorTypeStorage, "op", "msg"))
}

func TestTypeOf(t *testing.T) {
	err := WrapEmpty(errors.New("underflow"), "DeleteMin", "queue is empty")
	assert.Equal(t, ErrorTypeEmpty, TypeOf(err))

	// Survives further fmt wrapping
	outer := fmt.Errorf("draining: %w", err)
	assert.Equal(t, ErrorTypeEmpty, TypeOf(outer))

	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))
	assert.Equal(t, ErrorType(""), TypeOf(nil))
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, ErrorTypeInvalidArgument, NewInvalidArgumentError("op", "msg").Type)
	assert.Equal(t, ErrorTypeConfiguration, WrapConfigurationError(errors.New("bad"), "op", "msg").Type)
	assert.Equal(t, ErrorTypeStorage, NewStorageError("op", "msg").Type)
}

func TestStackTraceCapture(t *testing.T) {
	err := New(ErrorTypeInvalidArgument, "test", "message")
	// Should have captured some stack frames
	assert.Greater(t, len(err.Stack), 0)
}
