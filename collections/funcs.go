package collections

import "github.com/hasbyte1/go-lodash-utils/arr"

// This file holds the operations that change the element type or the shape
// of a Collection. Methods cannot introduce type parameters, so they are
// package-level functions that compose with method chains:
//
//	result := collections.Map(
//	    collections.New(1, 2, 3, 4, 5).Filter(func(n, _ int) bool { return n%2 == 0 }),
//	    func(n, _ int) string { return strconv.Itoa(n) },
//	)

// Map applies fn to every item and returns a new Collection[U].
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	return wrap(arr.Map(c.items, fn))
}

// FlatMap applies fn to every item and concatenates the results.
//
//	words := collections.FlatMap(collections.New("hello world", "foo bar"),
//	    func(s string, _ int) []string { return strings.Fields(s) })
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](c *Collection[T], fn func(T, int) []U) *Collection[U] {
	return wrap(arr.FlatMap(c.items, fn))
}

// FilterMap maps every item with fn and keeps the results fn marks as wanted.
func FilterMap[T, U any](c *Collection[T], fn func(T, int) (U, bool)) *Collection[U] {
	return wrap(arr.FilterMap(c.items, fn))
}

// Pluck extracts a single field U from every item.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return wrap(arr.Pluck(c.items, fn))
}

// Reduce folds the collection from the left.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc int, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	return arr.Reduce(c.items, fn, initial)
}

// ReduceRight folds the collection from the right. fn still receives each
// item's original index.
func ReduceRight[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	return arr.ReduceRight(c.items, fn, initial)
}

// UniqBy removes items whose key was already seen, keeping the first.
func UniqBy[T any, K comparable](c *Collection[T], fn func(T) K) *Collection[T] {
	return wrap(arr.UniqBy(c.items, fn))
}

// GroupBy groups items by the comparable key K extracted by fn.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]*Collection[T] {
	groups := arr.GroupBy(c.items, fn)
	out := make(map[K]*Collection[T], len(groups))
	for k, items := range groups {
		out[k] = wrap(items)
	}
	return out
}

// PartitionBy groups items by key and returns the groups in the order their
// keys first appear.
func PartitionBy[T any, K comparable](c *Collection[T], fn func(T) K) []*Collection[T] {
	return arr.Map(arr.PartitionBy(c.items, fn), func(group []T, _ int) *Collection[T] { return wrap(group) })
}

// KeyBy builds a map[K]T keyed by the value extracted by fn.
// When multiple items share the same key, the last one wins.
//
//	byID := collections.KeyBy(users, func(u User) int { return u.ID })
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]T {
	return arr.KeyBy(c.items, fn)
}

// CountValuesBy counts the items per key extracted by fn.
func CountValuesBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]int {
	return arr.CountValuesBy(c.items, fn)
}

// Zip combines two collections element-by-element into pairs.
// Stops at the shorter of the two collections.
//
//	pairs := collections.Zip(
//	    collections.New("a", "b", "c"),
//	    collections.New(1, 2, 3),
//	) // → [(a, 1) (b, 2) (c, 3)]
func Zip[A, B any](a *Collection[A], b *Collection[B]) *Collection[arr.Pair[A, B]] {
	return wrap(arr.Zip(a.items, b.items))
}

// Flatten concatenates a Collection[[]T] into a Collection[T] (one level).
//
//	flat := collections.Flatten(collections.New([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Flatten[T any](c *Collection[[]T]) *Collection[T] {
	return wrap(arr.Flatten(c.items))
}

// Interleave merges collections round-robin; exhausted ones are skipped.
func Interleave[T any](cs ...*Collection[T]) *Collection[T] {
	return wrap(arr.Interleave(arr.Map(cs, func(c *Collection[T], _ int) []T { return c.items })...))
}
