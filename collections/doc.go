// Package collections provides a generic, fluent Collection type on top of
// the slice helpers in package arr.
//
// # Overview
//
// The central type is [Collection][T], an immutable wrapper around a slice
// of T with a chainable API:
//
//	result := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    Reverse().
//	    Subset(0, 3).
//	    Implode(", ", strconv.Itoa) // → "10, 8, 6"
//
// Every method forwards to the arr helper of the same name, so negative
// indices, clamping and key-collision rules are identical in both packages.
// Errors are shared as well: [ErrIndexOutOfRange] is [arr.ErrIndexOutOfRange].
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
//
//	collections.Map(c, func(n int, _ int) string { return strconv.Itoa(n) })
//
// Package-level functions: [Map], [FlatMap], [FilterMap], [Pluck], [Reduce],
// [ReduceRight], [UniqBy], [GroupBy], [PartitionBy], [KeyBy],
// [CountValuesBy], [Zip], [Flatten], [Interleave].
package collections
