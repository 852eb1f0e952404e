// Package foundation provides small generic helpers shared by phonedir packages.
package foundation

import "fmt"

// Result holds either a value or the error that prevented producing it.
// It is the discriminated form of the usual (T, error) pair and is meant for
// callers that collect outcomes before deciding what to do with them.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure. A nil err is replaced so that Err never yields an Ok result.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = fmt.Errorf("foundation: Err called with nil error")
	}
	return Result[T]{err: err}
}

// FromTuple builds a Result from a (value, error) pair.
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the Result holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether the Result holds an error.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Unwrap returns the value and panics on an Err result.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(fmt.Sprintf("called Unwrap on Err result: %v", r.err))
	}
	return r.value
}

// UnwrapOr returns the value, or fallback on an Err result.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Error returns the held error, nil for Ok results.
func (r Result[T]) Error() error { return r.err }

// Get converts back to the (value, error) pair. The value is the zero T on Err.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Match calls onOk or onErr depending on the outcome.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.err != nil {
		onErr(r.err)
		return
	}
	onOk(r.value)
}

// Map transforms the value of an Ok result and passes errors through.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}
