package gateway

import (
	"errors"
	"fmt"
)

// Source tells where the value of a Result came from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Result carries a value read or written through the gateway. Err is set when the
// remote API was unreachable and the value was served by the local mirror.
type Result[T any] struct {
	Value  T
	Source Source
	Err    *NetworkError
}

// Offline reports whether the value was served by the local mirror.
func (r Result[T]) Offline() bool {
	return r.Err != nil
}

func remote[T any](value T) Result[T] {
	return Result[T]{Value: value, Source: SourceRemote}
}

func local[T any](value T, err *NetworkError) Result[T] {
	return Result[T]{Value: value, Source: SourceLocal, Err: err}
}

// NetworkError is a failure to reach the remote API or to understand its answer.
// StatusCode is zero when no response arrived.
type NetworkError struct {
	Resource   string
	Method     string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.Resource, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Method, e.Resource, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AsNetworkError unwraps err into a *NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}

	return nil, false
}
