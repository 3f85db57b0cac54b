package arr

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-lodash-utils/internal/index"
)

// ─────────────────────────────────────────────────────────────────────────────
// Positional access
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	if len(fns) > 0 {
		return Find(items, fns[0])
	}
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstOr returns the first element, or fallback when items is empty.
func FirstOr[T any](items []T, fallback T) T {
	if item, ok := First(items); ok {
		return item
	}
	return fallback
}

// FirstOrEmpty returns the first element, or the zero value when items is empty.
func FirstOrEmpty[T any](items []T) T {
	item, _ := First(items)
	return item
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	if len(fns) > 0 {
		item, _, ok := FindLastIndexOf(items, fns[0])
		return item, ok
	}
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastOr returns the last element, or fallback when items is empty.
func LastOr[T any](items []T, fallback T) T {
	if item, ok := Last(items); ok {
		return item
	}
	return fallback
}

// LastOrEmpty returns the last element, or the zero value when items is empty.
func LastOrEmpty[T any](items []T) T {
	item, _ := Last(items)
	return item
}

// Nth returns the element at n. A negative n counts from the end.
// Returns an error wrapping [ErrIndexOutOfRange] when n does not resolve to
// a position inside items.
//
//	Nth([]int{1, 2, 3, 4, 5}, -2) // → 4, nil
func Nth[T any](items []T, n int) (T, error) {
	i, ok := index.Normalize(len(items), n)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, n, len(items))
	}
	return items[i], nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element satisfying fn.
func Find[T any](items []T, fn func(T) bool) (T, bool) {
	for _, item := range items {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindOrElse returns the first element satisfying fn, or fallback.
func FindOrElse[T any](items []T, fallback T, fn func(T) bool) T {
	if item, ok := Find(items, fn); ok {
		return item
	}
	return fallback
}

// FindIndexOf returns the first element satisfying fn together with its index.
// The index is -1 and the flag false when nothing matches.
func FindIndexOf[T any](items []T, fn func(T) bool) (T, int, bool) {
	for i, item := range items {
		if fn(item) {
			return item, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// FindLastIndexOf returns the last element satisfying fn together with its index.
// The index is -1 and the flag false when nothing matches.
func FindLastIndexOf[T any](items []T, fn func(T) bool) (T, int, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i]) {
			return items[i], i, true
		}
	}
	var zero T
	return zero, -1, false
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	return Search(items, fn) >= 0
}

// ContainsValue reports whether items contains value.
func ContainsValue[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of value, or -1.
func LastIndexOf[T comparable](items []T, value T) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == value {
			return i
		}
	}
	return -1
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	_, i, _ := FindIndexOf(items, fn)
	return i
}

// ─────────────────────────────────────────────────────────────────────────────
// Extremes
// ─────────────────────────────────────────────────────────────────────────────

// Max returns the largest element. A NaN in the first position is replaced
// by the next element, so NaNs never shadow real values.
// Returns the zero value and false if items is empty.
func Max[T constraints.Ordered](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best := items[0]
	for _, item := range items[1:] {
		if item > best || best != best {
			best = item
		}
	}
	return best, true
}

// Min returns the smallest element. NaN is handled as in [Max].
// Returns the zero value and false if items is empty.
func Min[T constraints.Ordered](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best := items[0]
	for _, item := range items[1:] {
		if item < best || best != best {
			best = item
		}
	}
	return best, true
}

// MaxBy returns the element that wins against every other one according to
// greater, where greater(a, b) reports whether a should replace b.
// On ties the earliest element is kept.
func MaxBy[T any](items []T, greater func(a, b T) bool) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best := items[0]
	for _, item := range items[1:] {
		if greater(item, best) {
			best = item
		}
	}
	return best, true
}

// MinBy is [MaxBy] with less(a, b) reporting whether a should replace b.
func MinBy[T any](items []T, less func(a, b T) bool) (T, bool) {
	return MaxBy(items, less)
}
