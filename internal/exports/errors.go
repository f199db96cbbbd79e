package exports

import "errors"

var (
	// ErrTemplateNotFound indicates the requested template id is not in the
	// catalog.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrKindNotSupported indicates the template exists but does not accept
	// the requested document kind.
	ErrKindNotSupported = errors.New("template does not support document kind")

	// ErrFormatNotSupported indicates the template exists but does not allow
	// the requested output format.
	ErrFormatNotSupported = errors.New("template does not support export format")

	// ErrInvalidRequest indicates a structurally invalid export request
	// (unknown kind or format, missing ids).
	ErrInvalidRequest = errors.New("invalid export request")
)
