package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
)

// Error types for different categories of failures
type ErrorType string

const (
	ErrorTypeOutOfRange      ErrorType = "out_of_range"
	ErrorTypeDuplicateKey    ErrorType = "duplicate_key"
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeEmpty           ErrorType = "empty"
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
	ErrorTypeUnsupported     ErrorType = "unsupported_operation"
	ErrorTypeConfiguration   ErrorType = "configuration"
	ErrorTypeStorage         ErrorType = "storage"
)

// StructuredError provides rich error context
type StructuredError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
	Context   map[string]interface{}
	Stack     []uintptr
}

// Error implements the error interface
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Operation, e.Message)
}

// Unwrap returns the underlying cause
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new structured error
func New(errType ErrorType, operation, message string) *StructuredError {
	return &StructuredError{
		Type:      errType,
		Operation: operation,
		Message:   message,
		Context:   make(map[string]interface{}),
		Stack:     captureStack(),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, operation, message string) *StructuredError {
	if err == nil {
		return nil
	}

	return &StructuredError{
		Type:      errType,
		Operation: operation,
		Message:   message,
		Cause:     err,
		Context:   make(map[string]interface{}),
		Stack:     captureStack(),
	}
}

// WithContext adds context information to an error
func (e *StructuredError) WithContext(key string, value interface{}) *StructuredError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// TypeOf reports the ErrorType of the first StructuredError in err's chain.
// The empty string is returned when there is none.
func TypeOf(err error) ErrorType {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Type
	}
	return ""
}

// captureStack captures the current stack trace
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:]) // skip runtime.Callers, captureStack and the constructor
	return pcs[:n]
}

// WrapOutOfRange wraps err as an out-of-range error
func WrapOutOfRange(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeOutOfRange, operation, message)
}

// WrapDuplicateKey wraps err as a duplicate key error
func WrapDuplicateKey(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeDuplicateKey, operation, message)
}

// WrapNotFound wraps err as a not found error
func WrapNotFound(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeNotFound, operation, message)
}

// WrapEmpty wraps err as an empty container error
func WrapEmpty(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeEmpty, operation, message)
}

// WrapInvalidArgument wraps err as an invalid argument error
func WrapInvalidArgument(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeInvalidArgument, operation, message)
}

// WrapUnsupported wraps err as an unsupported operation error
func WrapUnsupported(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeUnsupported, operation, message)
}

// NewInvalidArgumentError creates an invalid argument error with no cause
func NewInvalidArgumentError(operation, message string) *StructuredError {
	return New(ErrorTypeInvalidArgument, operation, message)
}

// WrapConfigurationError wraps an error as a configuration error
func WrapConfigurationError(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeConfiguration, operation, message)
}

// NewStorageError creates a storage error
func NewStorageError(operation, message string) *StructuredError {
	return New(ErrorTypeStorage, operation, message)
}

// WrapStorageError wraps an error as a storage error
func WrapStorageError(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeStorage, operation, message)
}
