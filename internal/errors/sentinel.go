package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates user input failed validation.
	ErrValidation = errors.New("validation error")

	// ErrCollision indicates a file that would be generated already exists.
	ErrCollision = errors.New("file collision")

	// ErrStub indicates a stub could not be found, rendered, or written.
	ErrStub = errors.New("stub error")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")
)
