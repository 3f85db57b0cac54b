package arr

import "errors"

// Sentinel errors returned by slice helpers.
var (
	// ErrIndexOutOfRange is returned by Nth when the index does not resolve
	// to a position inside the slice.
	ErrIndexOutOfRange = errors.New("arr: index out of range")

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("arr: chunk size must be greater than 0")

	// ErrMismatchedLengths is returned by Combine when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("arr: keys and values must have the same length")
)
