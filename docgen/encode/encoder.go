package encode

import (
	"errors"

	"cvbuilder-backend/docgen/catalog"
	"cvbuilder-backend/docgen/render"
)

var (
	// ErrUnknownFormat indicates a format no encoder is registered for.
	ErrUnknownFormat = errors.New("unknown export format")

	// ErrEncoding indicates an internal invariant violation during encoding.
	// Capability checks happen at the catalog level before encoders run, so
	// hitting this is a defect, not a user error.
	ErrEncoding = errors.New("encoding failed")
)

// Encoder converts a RenderedDocument into a concrete byte stream. Encoders
// are pure functions of their input and hold no mutable state, so distinct
// exports can encode concurrently.
type Encoder interface {
	Format() string
	ContentType() string
	Extension() string
	Encode(doc *render.RenderedDocument) ([]byte, error)
}

// ForFormat returns the encoder registered for the given format.
func ForFormat(format string) (Encoder, error) {
	switch format {
	case catalog.FormatPDF:
		return PDFEncoder{}, nil
	case catalog.FormatDOCX:
		return DOCXEncoder{}, nil
	default:
		return nil, ErrUnknownFormat
	}
}

// KnownFormat reports whether any encoder handles the given format.
func KnownFormat(format string) bool {
	_, err := ForFormat(format)
	return err == nil
}
