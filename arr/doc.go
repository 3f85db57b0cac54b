// Package arr provides standalone generic helpers for Go slices, in the
// spirit of Lodash and Laravel's Arr facade.
//
// Every helper operates on plain []T values and never mutates its input:
//
//	evens  := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
//	mixed  := arr.Interleave([]int{1, 2, 3}, []int{4, 5, 6, 7}, []int{8, 9})
//	// → [1 4 8 2 5 9 3 6 7]
//
// # Negative indices
//
// Index arguments may be negative and then count from the end (-1 is the
// last element). Each function documents what happens to an index that is
// still out of range after that adjustment:
//
//   - [Nth] returns [ErrIndexOutOfRange].
//   - [Slice] and [Subset] clamp to the nearest bound.
//   - [Splice] inserts at the end (or the beginning for very negative indices).
//   - [DropByIndex] ignores the index.
//
// # Key collisions
//
// Helpers that build maps keep the last element for a repeated key
// ([KeyBy], [Associate], [SliceToMap]). Helpers that deduplicate keep the
// first one ([Uniq], [UniqBy], [FindUniques]).
//
// # Randomness
//
// [Sample], [Samples] and [Shuffle] draw from a process-wide generator that
// is safe for concurrent use. There is no seeding API.
package arr
