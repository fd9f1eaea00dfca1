// Package apperror defines the failure taxonomy the service layer hands
// to the boundary. Callers branch with errors.Is against the sentinels;
// the wrapped message is safe to show, internal causes stay in the log.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks bad input, rejected before any storage access.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an id with no matching live row, a stale
	// reference rather than bad input.
	ErrNotFound = errors.New("not found")

	// ErrStorage is the generic failure surfaced when an underlying
	// read/write broke. The original cause is logged, never attached.
	ErrStorage = errors.New("operation failed")

	// ErrAttachmentIO marks a file copy/write failure while storing an
	// attachment. Cleanup-path file errors are swallowed instead.
	ErrAttachmentIO = errors.New("attachment storage failed")
)

func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func NotFound(resource string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, resource)
}

// Storage returns the boundary-safe generic failure for an operation. The
// cause is deliberately not wrapped: raw driver errors must not leak
// through the API surface.
func Storage(operation string) error {
	return fmt.Errorf("%w: %s", ErrStorage, operation)
}

func AttachmentIO(operation string) error {
	return fmt.Errorf("%w: %s", ErrAttachmentIO, operation)
}
