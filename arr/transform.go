package arr

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// FilterMap maps and filters in one pass: fn returns the mapped value and
// whether to keep it.
//
//	FilterMap([]string{"cpu", "gpu", "mouse"}, func(s string, _ int) (string, bool) {
//	    return "xpu", strings.HasSuffix(s, "pu")
//	}) // → ["xpu", "xpu"]
func FilterMap[T, U any](items []T, fn func(T, int) (U, bool)) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		if v, keep := fn(item, i); keep {
			out = append(out, v)
		}
	}
	return out
}

// RejectMap is the complement of [FilterMap]: mapped values are kept when
// fn reports false.
func RejectMap[T, U any](items []T, fn func(T, int) (U, bool)) []U {
	return FilterMap(items, func(item T, i int) (U, bool) {
		v, ok := fn(item, i)
		return v, !ok
	})
}

// FilterReject splits items in a single pass into the elements satisfying fn
// and the rest. Relative order is preserved in both outputs.
func FilterReject[T any](items []T, fn func(T, int) bool) (kept, rejected []T) {
	kept = make([]T, 0, len(items))
	rejected = make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			kept = append(kept, item)
		} else {
			rejected = append(rejected, item)
		}
	}
	return kept, rejected
}

// Partition splits items into two slices: those satisfying fn and those that do not.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	return FilterReject(items, func(item T, _ int) bool { return fn(item) })
}

// FlatMap applies fn to each element (producing a []U) and flattens the results.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	return Map(items, func(item T, _ int) U { return fn(item) })
}

// Times invokes fn count times and collects the results.
func Times[T any](count int, fn func(int) T) []T {
	if count < 0 {
		count = 0
	}
	out := make([]T, count)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}

// Compact returns items without zero values.
func Compact[T comparable](items []T) []T {
	var zero T
	return Filter(items, func(item T, _ int) bool { return item != zero })
}

// Replace returns a copy of items with the first n occurrences of old
// replaced by replacement. A negative n replaces every occurrence.
func Replace[T comparable](items []T, old, replacement T, n int) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		if n == 0 {
			break
		}
		if out[i] == old {
			out[i] = replacement
			n--
		}
	}
	return out
}

// ReplaceAll returns a copy of items with every occurrence of old replaced.
func ReplaceAll[T comparable](items []T, old, replacement T) []T {
	return Replace(items, old, replacement, -1)
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding & iteration
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds items left to right into a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// ReduceRight folds items right to left. Indices passed to fn are the
// original positions.
func ReduceRight[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i := len(items) - 1; i >= 0; i-- {
		result = fn(result, items[i], i)
	}
	return result
}

// ForEach calls fn(item, index) for every element, in order.
func ForEach[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// ForEachWhile calls fn(item, index) in order until fn returns false.
// Elements after the stopping point are never visited.
func ForEachWhile[T any](items []T, fn func(T, int) bool) {
	for i, item := range items {
		if !fn(item, i) {
			return
		}
	}
}
