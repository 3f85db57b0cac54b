package collections

// Enumerable is the read-only surface of [Collection][T].
//
// Accept Enumerable in your own functions when they only need to look at
// the items, so callers may pass a *Collection or their own wrapper.
type Enumerable[T any] interface {
	// All returns a copy of every item.
	All() []T

	// Count returns the number of items.
	Count() int

	// IsEmpty reports whether there are no items.
	IsEmpty() bool

	// Nth returns the item at n, counting from the end when n is negative.
	Nth(n int) (T, error)

	// Each calls fn(item, index) for every item.
	Each(fn func(T, int))

	// ForEachWhile calls fn(item, index) until it returns false.
	ForEachWhile(fn func(T, int) bool)
}

var _ Enumerable[int] = (*Collection[int])(nil)
