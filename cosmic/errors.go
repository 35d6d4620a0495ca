package cosmic

import "errors"

var (
	// ErrMalformedImage indicates ragged rows, an empty image or an unknown glyph.
	ErrMalformedImage = errors.New("cosmic: malformed image")
	// ErrExpansion indicates an expansion factor below 1.
	ErrExpansion = errors.New("cosmic: expansion must be at least 1")
)
