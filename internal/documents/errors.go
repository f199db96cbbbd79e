package documents

import "errors"

var (
	// ErrNotFound indicates a document was not found (or is soft-deleted,
	// or belongs to another owner — callers cannot tell these apart).
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
