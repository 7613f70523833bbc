package scanner

import (
	"errors"
	"fmt"
	"os"
)

// TargetReason categorizes why a scan root was rejected
type TargetReason int

const (
	TargetNotExist TargetReason = iota
	TargetNotDirectory
	TargetUnreadable
)

// String returns a human-readable reason
func (r TargetReason) String() string {
	switch r {
	case TargetNotExist:
		return "Target does not exist"
	case TargetNotDirectory:
		return "Not a directory"
	case TargetUnreadable:
		return "Target is not accessible"
	default:
		return "Unspecified error"
	}
}

// TargetError is returned when the scan root cannot be indexed
type TargetError struct {
	Path     string
	Reason   TargetReason
	Original error
}

// Error implements the error interface
func (e *TargetError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Path, e.Reason, e.Original)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Unwrap returns the underlying error
func (e *TargetError) Unwrap() error {
	return e.Original
}

// UserMessage returns a user-friendly error message
func (e *TargetError) UserMessage() string {
	switch e.Reason {
	case TargetNotExist:
		return fmt.Sprintf("target does not exist: %s", e.Path)
	case TargetNotDirectory:
		return fmt.Sprintf("not a directory: %s", e.Path)
	default:
		return fmt.Sprintf("cannot access %s: %v", e.Path, e.Original)
	}
}

// ValidateRoot checks that path is an existing directory
func ValidateRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		reason := TargetUnreadable
		if errors.Is(err, os.ErrNotExist) {
			reason = TargetNotExist
		}
		return &TargetError{Path: path, Reason: reason, Original: err}
	}

	if !info.IsDir() {
		return &TargetError{Path: path, Reason: TargetNotDirectory}
	}

	return nil
}

// WalkError wraps a traversal failure. The walk stops at the first one.
type WalkError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *WalkError) Error() string {
	return fmt.Sprintf("failed to scan %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *WalkError) Unwrap() error {
	return e.Err
}
