// Package slides provides custom error types for better error handling and reporting.
package slides

import (
	"fmt"
)

// MissingTransformError is returned when an anchor is read before any write
// established the transform node (or its offset/extent sub-structures).
// Reads never auto-create the transform; only setters do.
type MissingTransformError struct {
	Field string
}

func (e *MissingTransformError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("transform not set: missing %s", e.Field)
	}
	return "transform not set"
}

// NewMissingTransformError creates a new missing transform error
func NewMissingTransformError(field string) error {
	return &MissingTransformError{Field: field}
}

// PartNotFoundError is returned when a referenced package part does not exist
type PartNotFoundError struct {
	Pattern string
}

func (e *PartNotFoundError) Error() string {
	return fmt.Sprintf("no package part matches '%s'", e.Pattern)
}

// NewPartNotFoundError creates a new part not found error
func NewPartNotFoundError(pattern string) error {
	return &PartNotFoundError{Pattern: pattern}
}

// UnsupportedShapeError is returned when a structural node kind is not
// recognized during removal dispatch
type UnsupportedShapeError struct {
	Kind string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unsupported shape kind: %s", e.Kind)
}

// NewUnsupportedShapeError creates a new unsupported shape error
func NewUnsupportedShapeError(kind string) error {
	return &UnsupportedShapeError{Kind: kind}
}

// UnsupportedOperationError is returned for disallowed API usage, such as
// inserting a shape built by a different container
type UnsupportedOperationError struct {
	Operation string
	Reason    string
}

func (e *UnsupportedOperationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported operation %s: %s", e.Operation, e.Reason)
	}
	return fmt.Sprintf("unsupported operation %s", e.Operation)
}

// NewUnsupportedOperationError creates a new unsupported operation error
func NewUnsupportedOperationError(operation, reason string) error {
	return &UnsupportedOperationError{Operation: operation, Reason: reason}
}

// DocumentError represents an error during package or part operations
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// IsMissingTransformError checks if an error is a missing transform error
func IsMissingTransformError(err error) bool {
	_, ok := err.(*MissingTransformError)
	return ok
}

// IsPartNotFoundError checks if an error is a part not found error
func IsPartNotFoundError(err error) bool {
	_, ok := err.(*PartNotFoundError)
	return ok
}

// IsUnsupportedShapeError checks if an error is an unsupported shape error
func IsUnsupportedShapeError(err error) bool {
	_, ok := err.(*UnsupportedShapeError)
	return ok
}

// IsUnsupportedOperationError checks if an error is an unsupported operation error
func IsUnsupportedOperationError(err error) bool {
	_, ok := err.(*UnsupportedOperationError)
	return ok
}

// IsDocumentError checks if an error is a document error
func IsDocumentError(err error) bool {
	_, ok := err.(*DocumentError)
	return ok
}
