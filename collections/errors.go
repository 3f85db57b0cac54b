package collections

import (
	"errors"

	"github.com/hasbyte1/go-lodash-utils/arr"
)

// Sentinel errors returned by Collection operations.
var (
	// ErrIndexOutOfRange is returned by Nth; it is the same value as
	// [arr.ErrIndexOutOfRange].
	ErrIndexOutOfRange = arr.ErrIndexOutOfRange

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = arr.ErrInvalidChunkSize

	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")
)
