// Package number provides generic numeric helpers: aggregation over slices,
// range generation, percentiles and a few conversions.
//
//	number.Sum([]int{1, 2, 3})                     // → 6
//	number.RangeWithSteps(0, 20, 5)                // → [0 5 10 15]
//	number.Percentile([]float64{1, 2, 3, 4, 5}, 25) // → 2, true
//
// Aggregations over an empty slice return the identity of the operation
// (0 for sums and means, 1 for products) rather than an error.
package number
