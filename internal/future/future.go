// Package future models deferred values that are already settled when
// they are handed out. Callers go through Await like they would for real
// asynchronous work, but nothing is ever scheduled: no goroutines, no
// timers, nothing to cancel.
package future

import (
	"context"
)

var closed = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Future is a settled deferred value.
type Future[T any] struct {
	value T
	err   error
}

// Resolved returns a future holding value.
func Resolved[T any](value T) *Future[T] {
	return &Future[T]{value: value}
}

// Failed returns a future holding err.
func Failed[T any](err error) *Future[T] {
	return &Future[T]{err: err}
}

// Done returns a channel that is already closed.
func (f *Future[T]) Done() <-chan struct{} {
	return closed
}

// Await returns the settled value. Settlement has already happened, so a
// cancelled context does not change the outcome.
func (f *Future[T]) Await(_ context.Context) (T, error) {
	return f.value, f.err
}

// Err returns the failure, if any.
func (f *Future[T]) Err() error {
	return f.err
}
