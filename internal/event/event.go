// Package event provides subscription-style notification streams for
// capabilities.
package event

import (
	"sort"
	"sync"
)

// Disposable releases a subscription or registration.
type Disposable interface {
	Dispose()
}

// DisposableFunc adapts a function to Disposable.
type DisposableFunc func()

// Dispose calls f.
func (f DisposableFunc) Dispose() { f() }

// NoopDisposable is returned by registrations that hold nothing.
var NoopDisposable Disposable = DisposableFunc(func() {})

// Event is a stream a listener can subscribe to.
type Event[T any] interface {
	Subscribe(listener func(T)) Disposable
}

type none[T any] struct{}

func (none[T]) Subscribe(func(T)) Disposable { return NoopDisposable }

// None returns an event that never fires.
func None[T any]() Event[T] {
	return none[T]{}
}

// Emitter is an Event whose owner fires it synchronously.
type Emitter[T any] struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(T)
}

// NewEmitter creates an emitter with no listeners.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{listeners: make(map[int]func(T))}
}

// Subscribe registers listener until the returned Disposable is disposed.
func (e *Emitter[T]) Subscribe(listener func(T)) Disposable {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.listeners[id] = listener

	var once sync.Once
	return DisposableFunc(func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.listeners, id)
			e.mu.Unlock()
		})
	})
}

// Fire delivers value to every current listener in subscription order.
func (e *Emitter[T]) Fire(value T) {
	e.mu.Lock()
	ids := make([]int, 0, len(e.listeners))
	for id := range e.listeners {
		ids = append(ids, id)
	}
	e.mu.Unlock()

	sort.Ints(ids)
	for _, id := range ids {
		e.mu.Lock()
		listener, ok := e.listeners[id]
		e.mu.Unlock()
		if ok {
			listener(value)
		}
	}
}

// Len returns the number of active listeners.
func (e *Emitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}
