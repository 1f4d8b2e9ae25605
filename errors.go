package text2docx

import "errors"

// Sentinel errors for library operations.
var (
	// Options validation errors.
	ErrInvalidPageSize   = errors.New("invalid page size")
	ErrInvalidDimensions = errors.New("invalid page dimensions")
	ErrInvalidMargin     = errors.New("invalid margin")
	ErrInvalidColumns    = errors.New("invalid column count")
	ErrInvalidFontSize   = errors.New("invalid font size")
	ErrEmptyFontName     = errors.New("font name cannot be empty")
	ErrInvalidLanguage   = errors.New("invalid language tag")

	// Input decoding errors.
	ErrUnknownEncoding = errors.New("unknown input encoding")
	ErrInvalidUTF8     = errors.New("input is not valid UTF-8")
	ErrReadInput       = errors.New("failed to read input")
)
