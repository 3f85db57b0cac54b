package arr

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ─────────────────────────────────────────────────────────────────────────────
// Deduplication
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns items with duplicates removed, keeping the first occurrence.
func Uniq[T comparable](items []T) []T {
	return UniqBy(items, func(item T) T { return item })
}

// UniqBy removes elements whose key was already seen, keeping the first
// occurrence of each key.
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// FindDuplicates returns one element per value that occurs more than once.
// The element reported is the second occurrence, and results are ordered by
// the position of that second occurrence.
//
//	FindDuplicates([]int{1, 2, 2, 3, 3, 4}) // → [2 3]
func FindDuplicates[T comparable](items []T) []T {
	return FindDuplicatesBy(items, func(item T) T { return item })
}

// FindDuplicatesBy is [FindDuplicates] with keys extracted by fn.
func FindDuplicatesBy[T any, K comparable](items []T, fn func(T) K) []T {
	// false: seen once, true: already reported
	reported := make(map[K]bool, len(items))
	out := make([]T, 0)
	for _, item := range items {
		k := fn(item)
		done, seen := reported[k]
		switch {
		case !seen:
			reported[k] = false
		case !done:
			reported[k] = true
			out = append(out, item)
		}
	}
	return out
}

// FindUniques returns the elements whose value occurs exactly once, in
// their original order.
func FindUniques[T comparable](items []T) []T {
	return FindUniquesBy(items, func(item T) T { return item })
}

// FindUniquesBy is [FindUniques] with keys extracted by fn.
func FindUniquesBy[T any, K comparable](items []T, fn func(T) K) []T {
	keys := make([]K, len(items))
	counts := make(map[K]int, len(items))
	for i, item := range items {
		keys[i] = fn(item)
		counts[keys[i]]++
	}
	out := make([]T, 0)
	for i, item := range items {
		if counts[keys[i]] == 1 {
			out = append(out, item)
		}
	}
	return out
}

// Diff returns elements in a that are not in b.
func Diff[T comparable](a, b []T) []T {
	set := toSet(b)
	return Filter(a, func(item T, _ int) bool {
		_, found := set[item]
		return !found
	})
}

// Intersect returns elements of a that also appear in b.
func Intersect[T comparable](a, b []T) []T {
	set := toSet(b)
	return Filter(a, func(item T, _ int) bool {
		_, found := set[item]
		return found
	})
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// ─────────────────────────────────────────────────────────────────────────────
// Counting
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements equal to value.
func Count[T comparable](items []T, value T) int {
	return CountBy(items, func(item T) bool { return item == value })
}

// CountBy returns the number of elements satisfying fn.
func CountBy[T any](items []T, fn func(T) bool) int {
	n := 0
	for _, item := range items {
		if fn(item) {
			n++
		}
	}
	return n
}

// CountValues returns how many times each value occurs.
func CountValues[T comparable](items []T) map[T]int {
	return CountValuesBy(items, func(item T) T { return item })
}

// CountValuesBy returns how many elements map to each key extracted by fn.
func CountValuesBy[T any, K comparable](items []T, fn func(T) K) map[K]int {
	out := make(map[K]int)
	for _, item := range items {
		out[fn(item)]++
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & keying
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups items by a comparable key K extracted by fn. Within each
// group the original relative order is kept.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// PartitionBy groups items by the key extracted by fn and returns the groups
// in the order their keys were first seen. Elements sharing a key need not
// be adjacent.
//
//	PartitionBy([]int{-2, -1, 0, 1, 2, 3}, sign) // → [[-2 -1] [0] [1 2 3]]
func PartitionBy[T any, K comparable](items []T, fn func(T) K) [][]T {
	pos := make(map[K]int)
	out := make([][]T, 0)
	for _, item := range items {
		k := fn(item)
		if i, ok := pos[k]; ok {
			out[i] = append(out[i], item)
			continue
		}
		pos[k] = len(out)
		out = append(out, []T{item})
	}
	return out
}

// KeyBy creates a map[K]T from items keyed by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}

// Associate builds a map from the key/value pairs returned by fn.
// When multiple items produce the same key, the last one wins.
func Associate[T any, K comparable, V any](items []T, fn func(T) (K, V)) map[K]V {
	out := make(map[K]V, len(items))
	for _, item := range items {
		k, v := fn(item)
		out[k] = v
	}
	return out
}

// SliceToMap is an alias for [Associate].
func SliceToMap[T any, K comparable, V any](items []T, fn func(T) (K, V)) map[K]V {
	return Associate(items, fn)
}

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Zip pairs elements from a and b at the same index.
// Stops at the length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Combine creates a map from equal-length key and value slices.
// Returns [ErrMismatchedLengths] if lengths differ.
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering checks
// ─────────────────────────────────────────────────────────────────────────────

// IsSorted reports whether items is in non-decreasing order.
// A NaN anywhere in a float slice makes it unsorted.
func IsSorted[T constraints.Ordered](items []T) bool {
	return IsSortedByKey(items, func(item T) T { return item })
}

// IsSortedByKey reports whether the keys extracted by fn are in
// non-decreasing order.
func IsSortedByKey[T any, K constraints.Ordered](items []T, fn func(T) K) bool {
	if len(items) < 2 {
		return true
	}
	prev := fn(items[0])
	for _, item := range items[1:] {
		next := fn(item)
		if !(prev <= next) {
			return false
		}
		prev = next
	}
	return true
}
