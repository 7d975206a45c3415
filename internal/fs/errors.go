// Package fs serves the in-memory store over FUSE.
//
// This file contains error types and error handling utilities.
package fs

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"sandboxenv/internal/logging"
	"sandboxenv/internal/memfs"
)

var (
	errLogger = logging.GetLogger().WithPrefix("error")

	// ErrInvalidPath indicates an entry name that cannot exist
	ErrInvalidPath = errors.New("invalid path format")

	// ErrReadOnly indicates attempt to modify read-only filesystem
	ErrReadOnly = errors.New("filesystem is read-only")

	// ErrNotDirectory indicates a directory operation on a file
	ErrNotDirectory = errors.New("not a directory")
)

// Error wraps view errors with context about the operation and affected
// path.
type Error struct {
	Op   string // Operation that failed (e.g., "lookup", "readdir")
	Path string // Affected path
	Err  error  // Underlying error
}

// Error implements the error interface, providing a formatted error message
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("operation %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("operation %s on %s failed: %v", e.Op, e.Path, e.Err)
}

// Unwrap implements error unwrapping for the errors.Is/As functions
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, path string, err error) *Error {
	e := &Error{Op: op, Path: path, Err: err}
	errLogger.Debug("%v", e)
	return e
}

// readOnlyError records a rejected mutation of path.
func readOnlyError(op, path string) error {
	return newError(op, path, ErrReadOnly)
}

// ToFuseError converts view and store errors to the errno FUSE expects.
func ToFuseError(err error) error {
	if err == nil {
		return nil
	}
	errLogger.Trace("Converting error to FUSE error: %v", err)

	switch {
	case errors.Is(err, memfs.ErrNotFound), errors.Is(err, memfs.ErrParentMissing), errors.Is(err, os.ErrNotExist):
		return syscall.ENOENT
	case errors.Is(err, memfs.ErrNotDirectory), errors.Is(err, ErrNotDirectory):
		return syscall.ENOTDIR
	case errors.Is(err, memfs.ErrIsDirectory):
		return syscall.EISDIR
	case errors.Is(err, memfs.ErrExistsAsFile), errors.Is(err, memfs.ErrExistsNoOverwrite):
		return syscall.EEXIST
	case errors.Is(err, ErrReadOnly):
		return syscall.EROFS
	case errors.Is(err, ErrInvalidPath):
		return syscall.EINVAL
	case errors.Is(err, os.ErrPermission):
		return syscall.EACCES
	default:
		errLogger.Debug("Unknown error type, returning EIO: %v", err)
		return syscall.EIO
	}
}

// Common operation names for consistent logging and error reporting
const (
	OpLookup  = "lookup"  // Looking up a path
	OpCreate  = "create"  // Creating a new file
	OpMkdir   = "mkdir"   // Creating a new directory
	OpRemove  = "remove"  // Removing a file or directory
	OpRename  = "rename"  // Renaming/moving a file or directory
	OpSetattr = "setattr" // Setting file attributes
	OpOpen    = "open"    // Opening a file for writing
)
