package arr

import (
	"sort"

	"github.com/hasbyte1/go-lodash-utils/internal/index"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns a copy of items[start:end]. Both bounds may be negative and
// are clamped to the slice; an empty slice is returned when start >= end.
//
//	Slice([]int{0, 1, 2, 3, 4}, 1, -1) // → [1 2 3]
func Slice[T any](items []T, start, end int) []T {
	n := len(items)
	lo, hi := index.Clamp(n, start), index.Clamp(n, end)
	if lo >= hi {
		return []T{}
	}
	return clone(items[lo:hi])
}

// Subset returns at most length elements starting at offset. A negative
// offset counts from the end and is clamped to 0; a non-positive length
// yields an empty slice.
//
//	Subset([]int{0, 1, 2, 3, 4}, -3, 2) // → [2 3]
func Subset[T any](items []T, offset, length int) []T {
	n := len(items)
	start := index.Clamp(n, offset)
	if length <= 0 || start >= n {
		return []T{}
	}
	end := n
	if length < n-start {
		end = start + length
	}
	return clone(items[start:end])
}

// Splice returns a copy of items with elements inserted before position i.
// Nothing is replaced. A negative i counts from the end; i past the end
// appends and i before the beginning prepends.
//
//	Splice([]int{1, 2, 3, 4, 5}, -2, 99) // → [1 2 3 99 4 5]
func Splice[T any](items []T, i int, elements ...T) []T {
	at := index.Insertion(len(items), i)
	out := make([]T, 0, len(items)+len(elements))
	out = append(out, items[:at]...)
	out = append(out, elements...)
	return append(out, items[at:]...)
}

// Drop returns items without its first n elements.
func Drop[T any](items []T, n int) []T {
	n = max(n, 0)
	if n >= len(items) {
		return []T{}
	}
	return clone(items[n:])
}

// DropRight returns items without its last n elements.
func DropRight[T any](items []T, n int) []T {
	n = max(n, 0)
	if n >= len(items) {
		return []T{}
	}
	return clone(items[:len(items)-n])
}

// DropWhile drops the longest prefix whose elements satisfy fn.
func DropWhile[T any](items []T, fn func(T) bool) []T {
	i := 0
	for i < len(items) && fn(items[i]) {
		i++
	}
	return clone(items[i:])
}

// DropRightWhile drops the longest suffix whose elements satisfy fn.
func DropRightWhile[T any](items []T, fn func(T) bool) []T {
	i := len(items)
	for i > 0 && fn(items[i-1]) {
		i--
	}
	return clone(items[:i])
}

// DropByIndex removes the elements at the given indices. Negative indices
// count from the end; indices that are still out of range are ignored and
// repeated indices remove a single element.
//
//	DropByIndex([]int{0, 1, 2, 3, 4}, 0, -1, 99) // → [1 2 3]
func DropByIndex[T any](items []T, indexes ...int) []T {
	n := len(items)
	drop := make(map[int]struct{}, len(indexes))
	for _, raw := range indexes {
		if i, ok := index.Normalize(n, raw); ok {
			drop[i] = struct{}{}
		}
	}
	out := make([]T, 0, n-len(drop))
	for i, item := range items {
		if _, skip := drop[i]; !skip {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
// Returns [ErrInvalidChunkSize] when size <= 0.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunks = append(chunks, clone(items[i:end]))
	}
	return chunks, nil
}

// Flatten concatenates a slice of slices into a single flat slice.
func Flatten[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Interleave merges the given slices round-robin. Exhausted slices are
// skipped while the others continue.
//
//	Interleave([]int{1, 2, 3}, []int{4, 5, 6, 7}, []int{8, 9})
//	// → [1 4 8 2 5 9 3 6 7]
func Interleave[T any](collections ...[]T) []T {
	longest, total := 0, 0
	for _, c := range collections {
		longest = max(longest, len(c))
		total += len(c)
	}
	out := make([]T, 0, total)
	for i := 0; i < longest; i++ {
		for _, c := range collections {
			if i < len(c) {
				out = append(out, c[i])
			}
		}
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Prepend prepends values to the front of items.
func Prepend[T any](items []T, values ...T) []T {
	out := make([]T, len(values)+len(items))
	copy(out, values)
	copy(out[len(values):], items)
	return out
}

// Fill returns a slice of the same length as items with every element set
// to value.
func Fill[T any](items []T, value T) []T {
	return Repeat(len(items), value)
}

// Repeat returns a slice holding value count times.
func Repeat[T any](count int, value T) []T {
	return RepeatBy(count, func(int) T { return value })
}

// RepeatBy returns a slice of length count whose i-th element is fn(i).
func RepeatBy[T any](count int, fn func(int) T) []T {
	return Times(count, fn)
}

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements preserve their original order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := clone(items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Combination returns every k-element combination of items, preserving the
// relative order of the chosen elements. k == 0 yields one empty
// combination; k > len(items) yields none.
func Combination[T any](items []T, k int) [][]T {
	if k < 0 || k > len(items) {
		return [][]T{}
	}
	out := make([][]T, 0)
	current := make([]T, 0, k)
	var pick func(start int)
	pick = func(start int) {
		if len(current) == k {
			out = append(out, clone(current))
			return
		}
		for i := start; i <= len(items)-(k-len(current)); i++ {
			current = append(current, items[i])
			pick(i + 1)
			current = current[:len(current)-1]
		}
	}
	pick(0)
	return out
}

// Permutation returns every ordering of items. Permutations are emitted in
// the order obtained by fixing each element in turn as the head.
func Permutation[T any](items []T) [][]T {
	if len(items) == 0 {
		return [][]T{{}}
	}
	out := make([][]T, 0)
	for i, head := range items {
		rest := DropByIndex(items, i)
		for _, tail := range Permutation(rest) {
			out = append(out, Prepend(tail, head))
		}
	}
	return out
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
