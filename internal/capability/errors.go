package capability

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is matched by every NotImplementedError.
	ErrNotImplemented = errors.New("method not implemented")

	// ErrAlreadyRegistered indicates a second binding for one capability.
	ErrAlreadyRegistered = errors.New("capability already registered")

	// ErrNotRegistered indicates a lookup of an unbound capability.
	ErrNotRegistered = errors.New("capability not registered")

	// ErrWrongType indicates a binding that does not satisfy the requested interface.
	ErrWrongType = errors.New("capability has unexpected type")
)

// NotImplementedError is returned by operations a stand-in deliberately
// does not support. It names the capability and the operation.
type NotImplementedError struct {
	Capability ID
	Op         string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Capability, e.Op, ErrNotImplemented)
}

// Unwrap lets errors.Is match ErrNotImplemented.
func (e *NotImplementedError) Unwrap() error {
	return ErrNotImplemented
}

// NotImplemented builds the error for op on capability id.
func NotImplemented(id ID, op string) error {
	return &NotImplementedError{Capability: id, Op: op}
}

// IsNotImplemented reports whether err is a not-implemented failure.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// Error wraps registry failures with the capability involved.
type Error struct {
	Op  string
	ID  ID
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("operation %s on %s failed: %v", e.Op, e.ID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
