// Package memfs is the in-memory hierarchical byte store the sandbox
// workspace lives in.
//
// This file contains error types and error handling utilities.
package memfs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a path doesn't exist
	ErrNotFound = errors.New("path not found")

	// ErrParentMissing indicates a file write under a directory that was never created
	ErrParentMissing = errors.New("parent directory does not exist")

	// ErrExistsAsFile indicates a directory operation hit an existing file
	ErrExistsAsFile = errors.New("path already exists as a file")

	// ErrExistsNoOverwrite indicates a write to an existing file without overwrite
	ErrExistsNoOverwrite = errors.New("file exists and overwrite is not set")

	// ErrIsDirectory indicates a file operation on a directory
	ErrIsDirectory = errors.New("path is a directory")

	// ErrNotDirectory indicates a path component that should be a directory is a file
	ErrNotDirectory = errors.New("path component is not a directory")
)

// Error wraps store errors with context about the operation and affected
// path.
type Error struct {
	Op   string // Operation that failed (e.g., "mkdir", "writeFile")
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
	fsErr := &Error{
		Op:   op,
		Path: path,
		Err:  err,
	}
	logger.Debug("Created new store error: %v", fsErr)
	return fsErr
}

// Common operation names for consistent logging and error reporting
const (
	OpMkdir     = "mkdir"
	OpWriteFile = "writeFile"
	OpReadFile  = "readFile"
	OpStat      = "stat"
	OpReadDir   = "readdir"
)
