package capability

import (
	"errors"
	"fmt"
	"sync"

	"sandboxenv/internal/logging"
)

var (
	logger = logging.GetLogger().WithPrefix("capability")
)

// Registry maps capability identifiers to their implementations.
type Registry struct {
	mu       sync.RWMutex
	bindings map[ID]any
	order    []ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[ID]any)}
}

// Register binds impl to id. Each id can be bound once.
func (r *Registry) Register(id ID, impl any) error {
	if impl == nil {
		return &Error{Op: "register", ID: id, Err: errors.New("nil implementation")}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bindings[id]; exists {
		logger.Error("Capability %s registered twice", id)
		return &Error{Op: "register", ID: id, Err: ErrAlreadyRegistered}
	}
	r.bindings[id] = impl
	r.order = append(r.order, id)
	logger.Debug("Registered %s -> %T", id, impl)
	return nil
}

// Lookup returns the implementation bound to id.
func (r *Registry) Lookup(id ID) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	impl, ok := r.bindings[id]
	return impl, ok
}

// IDs returns the bound identifiers in registration order.
func (r *Registry) IDs() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ID, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// Missing returns the identifiers from required that have no binding.
func (r *Registry) Missing(required []ID) []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var missing []ID
	for _, id := range required {
		if _, ok := r.bindings[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Get looks up id and asserts it to T.
func Get[T any](r *Registry, id ID) (T, error) {
	var zero T
	impl, ok := r.Lookup(id)
	if !ok {
		return zero, &Error{Op: "lookup", ID: id, Err: ErrNotRegistered}
	}
	typed, ok := impl.(T)
	if !ok {
		return zero, &Error{Op: "lookup", ID: id, Err: fmt.Errorf("%w: %T", ErrWrongType, impl)}
	}
	return typed, nil
}
