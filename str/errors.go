package str

import "errors"

// Sentinel errors returned by string helpers.
var (
	// ErrInvalidSize is returned by ChunkString when size <= 0.
	ErrInvalidSize = errors.New("str: size must be greater than 0")

	// ErrInvalidLength is returned by Random when length is negative.
	ErrInvalidLength = errors.New("str: length must not be negative")

	// ErrEmptyCharset is returned by Random when the charset has no runes.
	ErrEmptyCharset = errors.New("str: charset must not be empty")
)
