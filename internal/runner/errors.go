package runner

import (
	"errors"
	"fmt"
)

// FileReadError represents a failure to read the searched file.
// It keeps the offending path alongside the underlying cause so callers can
// classify the failure without parsing message text.
type FileReadError struct {
	Path string // file that could not be read
	Err  error  // underlying error from the operating system
}

// NewFileReadError creates a FileReadError for path.
func NewFileReadError(path string, err error) *FileReadError {
	return &FileReadError{
		Path: path,
		Err:  err,
	}
}

// Error implements the error interface for FileReadError.
func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *FileReadError) Unwrap() error {
	return e.Err
}

// IsFileReadError checks if the error is or wraps a FileReadError.
func IsFileReadError(err error) bool {
	if err == nil {
		return false
	}
	var fre *FileReadError
	return errors.As(err, &fre)
}
