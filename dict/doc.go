// Package dict provides generic helpers for Go maps.
//
// Maps are never mutated; every helper builds a new map or slice. Slices
// derived from map iteration follow Go's map order, which is unspecified.
// Use [SortedKeys] or sort the result when a stable order matters.
//
// When a helper may produce the same key twice ([Invert], [Assign],
// [MapKeys], [MapEntries], [FromEntries], [FromPairs]) the value written
// last wins. For [Invert] and the mapping helpers over a single map that
// means an arbitrary one of the colliding entries.
package dict
