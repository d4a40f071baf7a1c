package indexpq

import (
	"errors"
	"fmt"

	pqerrors "github.com/23skdu/indexpq/internal/errors"
)

// Sentinel causes for every failure the container reports. Returned errors
// are *Error values wrapping one of these, so errors.Is works against them.
var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrDuplicateKey    = errors.New("index is already in the priority queue")
	ErrNotFound        = errors.New("index is not in the priority queue")
	ErrEmpty           = errors.New("priority queue underflow")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupported     = errors.New("unsupported operation")
)

// Error is the structured error returned by every fallible operation.
type Error = pqerrors.StructuredError

// ErrorType classifies an Error.
type ErrorType = pqerrors.ErrorType

// Kind reports the ErrorType carried by err, or "" for foreign errors.
func Kind(err error) ErrorType {
	return pqerrors.TypeOf(err)
}

func outOfRange(op string, i, nmax int) *Error {
	return pqerrors.WrapOutOfRange(ErrOutOfRange, op, fmt.Sprintf("index %d outside [0, %d)", i, nmax)).
		WithContext("index", i).
		WithContext("capacity", nmax)
}

func notFound(op string, i int) *Error {
	return pqerrors.WrapNotFound(ErrNotFound, op, fmt.Sprintf("index %d has no key", i)).
		WithContext("index", i)
}

func duplicate(op string, i int) *Error {
	return pqerrors.WrapDuplicateKey(ErrDuplicateKey, op, fmt.Sprintf("index %d already has a key", i)).
		WithContext("index", i)
}

func empty(op string) *Error {
	return pqerrors.WrapEmpty(ErrEmpty, op, "no keys on the priority queue")
}

func invalidArgument(op, message string) *Error {
	return pqerrors.WrapInvalidArgument(ErrInvalidArgument, op, message)
}

func unsupported(op, message string) *Error {
	return pqerrors.WrapUnsupported(ErrUnsupported, op, message)
}
