package collections

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/number"
)

// Collection is a generic, immutable wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so a Collection may be read from several
// goroutines at once.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
//
// # Method chaining
//
//	result := collections.New(5, 3, 8, 1, 9, 2).
//	    Filter(func(n, _ int) bool { return n > 2 }).
//	    Sort(func(a, b int) bool { return a < b }).
//	    Slice(0, 2) // → [3 5]
//
// Each method delegates to the matching helper in package arr, so index and
// collision rules are the same: negative positions count from the end, and
// Uniq keeps the first occurrence of a key.
type Collection[T any] struct {
	items []T
}

// wrap adopts items without copying. Only for slices nobody else holds.
func wrap[T any](items []T) *Collection[T] {
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return wrap(dst)
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return wrap([]T{})
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
// Unlike [Collection.Nth], a negative index is never valid here.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// Nth returns the item at n, counting from the end when n is negative.
// The error wraps [ErrIndexOutOfRange].
func (c *Collection[T]) Nth(n int) (T, error) {
	return arr.Nth(c.items, n)
}

// String returns a JSON representation of the collection.
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	arr.ForEach(c.items, fn)
}

// ForEachWhile calls fn(item, index) until it returns false.
func (c *Collection[T]) ForEachWhile(fn func(T, int) bool) {
	arr.ForEachWhile(c.items, fn)
}

// Tap calls fn(c) for side-effects and returns c unchanged.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// Dump prints the collection to stdout and returns c for chaining.
func (c *Collection[T]) Dump() *Collection[T] {
	fmt.Println(c.String())
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0].
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	return arr.First(c.items, fns...)
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := c.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Last returns the last item, optionally matching fns[0].
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	return arr.Last(c.items, fns...)
}

// LastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) LastOrFail(fn func(T) bool) (T, error) {
	item, ok := c.Last(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T) bool) bool {
	return arr.Contains(c.items, fn)
}

// Search returns the index of the first item for which fn returns true, or -1.
func (c *Collection[T]) Search(fn func(T) bool) int {
	return arr.Search(c.items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the items for which fn(item, index) returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	return wrap(arr.Filter(c.items, fn))
}

// Reject removes the items for which fn(item, index) returns true.
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return wrap(arr.Reject(c.items, fn))
}

// FilterReject splits c in one pass: items satisfying fn, then the rest.
func (c *Collection[T]) FilterReject(fn func(T, int) bool) (kept, rejected *Collection[T]) {
	k, r := arr.FilterReject(c.items, fn)
	return wrap(k), wrap(r)
}

// Partition is FilterReject with a predicate that ignores the index.
func (c *Collection[T]) Partition(fn func(T) bool) (*Collection[T], *Collection[T]) {
	return c.FilterReject(func(item T, _ int) bool { return fn(item) })
}

// Uniq removes items whose key, as returned by fn, was already seen.
// The first occurrence of each key is kept.
//
// Uniq panics if fn returns a key that is not comparable, such as a slice
// or a map. Use [UniqBy] to have the compiler check the key type instead.
func (c *Collection[T]) Uniq(fn func(T) any) *Collection[T] {
	return wrap(arr.UniqBy(c.items, fn))
}

// Reverse returns the items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	return wrap(arr.Reverse(c.items))
}

// Sort returns the items stably sorted by less.
func (c *Collection[T]) Sort(less func(a, b T) bool) *Collection[T] {
	return wrap(arr.Sort(c.items, less))
}

// Shuffle returns the items in random order.
func (c *Collection[T]) Shuffle() *Collection[T] {
	return wrap(arr.Shuffle(c.items))
}

// Sample returns one item chosen at random, or the zero value when c is empty.
func (c *Collection[T]) Sample() T {
	return arr.Sample(c.items)
}

// Samples returns up to n distinct positions of c chosen at random.
func (c *Collection[T]) Samples(n int) *Collection[T] {
	return wrap(arr.Samples(c.items, n))
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Push returns a new collection with items appended.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	return wrap(arr.Flatten([][]T{c.items, items}))
}

// Prepend returns a new collection with items inserted at the front.
func (c *Collection[T]) Prepend(items ...T) *Collection[T] {
	return wrap(arr.Prepend(c.items, items...))
}

// Concat returns a new collection with all items from other appended.
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	return c.Push(other.items...)
}

// Splice inserts elements before position i. A negative i counts from the
// end; see [arr.Splice].
func (c *Collection[T]) Splice(i int, elements ...T) *Collection[T] {
	return wrap(arr.Splice(c.items, i, elements...))
}

// DropByIndex removes the items at the given positions; out-of-range
// positions are ignored.
func (c *Collection[T]) DropByIndex(indexes ...int) *Collection[T] {
	return wrap(arr.DropByIndex(c.items, indexes...))
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns the items between start and end (exclusive). Both may be
// negative and are clamped.
func (c *Collection[T]) Slice(start, end int) *Collection[T] {
	return wrap(arr.Slice(c.items, start, end))
}

// Subset returns at most length items starting at offset.
func (c *Collection[T]) Subset(offset, length int) *Collection[T] {
	return wrap(arr.Subset(c.items, offset, length))
}

// Take returns at most n items from the start.
// A negative n returns items from the end (Take(-3) is the last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	if n < 0 {
		return c.Slice(n, len(c.items))
	}
	return c.Subset(0, n)
}

// Drop skips the first n items.
func (c *Collection[T]) Drop(n int) *Collection[T] {
	return wrap(arr.Drop(c.items, n))
}

// DropRight skips the last n items.
func (c *Collection[T]) DropRight(n int) *Collection[T] {
	return wrap(arr.DropRight(c.items, n))
}

// DropWhile skips the leading items that satisfy fn.
func (c *Collection[T]) DropWhile(fn func(T) bool) *Collection[T] {
	return wrap(arr.DropWhile(c.items, fn))
}

// DropRightWhile skips the trailing items that satisfy fn.
func (c *Collection[T]) DropRightWhile(fn func(T) bool) *Collection[T] {
	return wrap(arr.DropRightWhile(c.items, fn))
}

// Chunk splits the collection into consecutive groups of size.
// Returns [ErrInvalidChunkSize] when size <= 0.
func (c *Collection[T]) Chunk(size int) ([]*Collection[T], error) {
	chunks, err := arr.Chunk(c.items, size)
	if err != nil {
		return nil, err
	}
	return arr.Map(chunks, func(chunk []T, _ int) *Collection[T] { return wrap(chunk) }), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of fn(item) over all items.
func (c *Collection[T]) Sum(fn func(T) float64) float64 {
	return number.SumBy(c.items, fn)
}

// Average returns the mean of fn(item), or 0 for an empty collection.
func (c *Collection[T]) Average(fn func(T) float64) float64 {
	return number.MeanBy(c.items, fn)
}

// Min returns the item with the smallest fn(item); ties keep the first.
func (c *Collection[T]) Min(fn func(T) float64) (T, bool) {
	return arr.MinBy(c.items, func(a, b T) bool { return fn(a) < fn(b) })
}

// Max returns the item with the largest fn(item); ties keep the first.
func (c *Collection[T]) Max(fn func(T) float64) (T, bool) {
	return arr.MaxBy(c.items, func(a, b T) bool { return fn(a) > fn(b) })
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins all items into a string using sep, converting each item with fn.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	return strings.Join(arr.Pluck(c.items, fn), sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn)
}
