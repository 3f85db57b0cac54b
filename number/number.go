package number

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Bounds
// ─────────────────────────────────────────────────────────────────────────────

// Clamp limits value to the inclusive range [lo, hi].
func Clamp[T constraints.Ordered](value, lo, hi T) T {
	switch {
	case value < lo:
		return lo
	case value > hi:
		return hi
	}
	return value
}

// maxPowerOfTwo caps NearestPowerOfTwo.
const maxPowerOfTwo = 1 << 30

// NearestPowerOfTwo returns the smallest power of two that is >= n, capped
// at 1<<30. Zero and negative n give 1.
//
//	NearestPowerOfTwo(100) // → 128
func NearestPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	if n >= maxPowerOfTwo {
		return maxPowerOfTwo
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Interpolate returns a linear interpolation between start and end.
// The argument of the returned func is clamped to [0, 1].
func Interpolate(start, end float64) func(float64) float64 {
	return func(t float64) float64 {
		return start + (end-start)*Clamp(t, 0, 1)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds up items. An empty slice sums to 0.
func Sum[T Number](items []T) T {
	var total T
	for _, item := range items {
		total += item
	}
	return total
}

// SumBy adds up fn(item) for every item.
func SumBy[T any, R Number](items []T, fn func(T) R) R {
	var total R
	for _, item := range items {
		total += fn(item)
	}
	return total
}

// Product multiplies items together. An empty slice gives 1.
func Product[T Number](items []T) T {
	total := T(1)
	for _, item := range items {
		total *= item
	}
	return total
}

// ProductBy multiplies fn(item) for every item. An empty slice gives 1.
func ProductBy[T any, R Number](items []T, fn func(T) R) R {
	total := R(1)
	for _, item := range items {
		total *= fn(item)
	}
	return total
}

// Mean returns the arithmetic mean of items, or 0 for an empty slice.
// Integer types use integer division.
func Mean[T Number](items []T) T {
	if len(items) == 0 {
		return 0
	}
	return Sum(items) / T(len(items))
}

// MeanBy returns the mean of fn(item), or 0 for an empty slice.
func MeanBy[T any](items []T, fn func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	return SumBy(items, fn) / float64(len(items))
}

// Percentile returns the p-th percentile of items using linear
// interpolation between the two closest ranks. It reports false when items
// is empty or p is outside [0, 100].
//
//	Percentile([]int{1, 2, 3, 4, 5}, 25) // → 2, true
func Percentile[T Number](items []T, p float64) (float64, bool) {
	if len(items) == 0 || p < 0 || p > 100 || math.IsNaN(p) {
		return 0, false
	}
	sorted := make([]float64, len(items))
	for i, item := range items {
		sorted[i] = float64(item)
	}
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo, hi := int(math.Floor(rank)), int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo], true
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(rank-float64(lo)), true
}

// Median is Percentile(items, 50).
func Median[T Number](items []T) (float64, bool) {
	return Percentile(items, 50)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ranges
// ─────────────────────────────────────────────────────────────────────────────

// Range returns |n| consecutive integers starting at 0, counting down when n
// is negative.
//
//	Range(4)  // → [0 1 2 3]
//	Range(-4) // → [0 -1 -2 -3]
func Range(n int) []int {
	return RangeFrom(0, n)
}

// RangeFrom returns |n| values starting at start, stepping by 1 (or -1 when
// n is negative). Unsigned types cannot count down, so a negative n yields
// an empty slice for them.
func RangeFrom[T Number](start T, n int) []T {
	step := T(1)
	if n < 0 {
		var zero T
		if zero-1 > zero {
			return []T{}
		}
		n = -n
		step = 0 - step
	}
	out := make([]T, n)
	for i := range out {
		out[i] = start
		start += step
	}
	return out
}

// RangeWithSteps returns the values from start towards end (exclusive) in
// increments of step. The result is empty when step is zero or points away
// from end.
//
//	RangeWithSteps(0, 20, 5)  // → [0 5 10 15]
//	RangeWithSteps(10, 0, -3) // → [10 7 4 1]
func RangeWithSteps[T Number](start, end, step T) []T {
	out := make([]T, 0)
	switch {
	case start < end && step > 0:
		for v := start; v < end; {
			out = append(out, v)
			next := v + step
			if next <= v {
				break // overflow or lost precision
			}
			v = next
		}
	case start > end && step < 0:
		for v := start; v > end; {
			out = append(out, v)
			next := v + step
			if next >= v {
				break
			}
			v = next
		}
	}
	return out
}
