package dict

import "github.com/hasbyte1/go-lodash-utils/arr"

// Entry is a single key/value pair of a map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// ─────────────────────────────────────────────────────────────────────────────
// Merging & inversion
// ─────────────────────────────────────────────────────────────────────────────

// Assign merges maps into a new map. Later maps win on key collisions.
//
//	Assign(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 3}) // → {a:1 b:3}
func Assign[K comparable, V any](maps ...map[K]V) map[K]V {
	out := make(map[K]V, size(maps))
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Invert swaps keys and values. When several keys share a value, an
// arbitrary one of them survives.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping
// ─────────────────────────────────────────────────────────────────────────────

// MapKeys rewrites every key with fn, keeping values.
func MapKeys[K comparable, V any, R comparable](m map[K]V, fn func(V, K) R) map[R]V {
	out := make(map[R]V, len(m))
	for k, v := range m {
		out[fn(v, k)] = v
	}
	return out
}

// MapValues rewrites every value with fn, keeping keys.
func MapValues[K comparable, V, R any](m map[K]V, fn func(V, K) R) map[K]R {
	out := make(map[K]R, len(m))
	for k, v := range m {
		out[k] = fn(v, k)
	}
	return out
}

// MapEntries rewrites every entry with fn.
func MapEntries[K1 comparable, V1 any, K2 comparable, V2 any](m map[K1]V1, fn func(K1, V1) (K2, V2)) map[K2]V2 {
	out := make(map[K2]V2, len(m))
	for k, v := range m {
		k2, v2 := fn(k, v)
		out[k2] = v2
	}
	return out
}

// MapToSlice turns every entry of m into a slice element.
func MapToSlice[K comparable, V, R any](m map[K]V, fn func(K, V) R) []R {
	out := make([]R, 0, len(m))
	for k, v := range m {
		out = append(out, fn(k, v))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Entries & pairs
// ─────────────────────────────────────────────────────────────────────────────

// Entries returns the entries of m.
func Entries[K comparable, V any](m map[K]V) []Entry[K, V] {
	return MapToSlice(m, func(k K, v V) Entry[K, V] { return Entry[K, V]{Key: k, Value: v} })
}

// FromEntries builds a map from entries. A repeated key keeps its last value.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	out := make(map[K]V, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}

// ToPairs returns the entries of m as [arr.Pair] values, key first.
func ToPairs[K comparable, V any](m map[K]V) []arr.Pair[K, V] {
	return MapToSlice(m, func(k K, v V) arr.Pair[K, V] { return arr.Pair[K, V]{First: k, Second: v} })
}

// FromPairs builds a map from pairs, key first. A repeated key keeps its
// last value.
func FromPairs[K comparable, V any](pairs []arr.Pair[K, V]) map[K]V {
	return arr.Associate(pairs, func(p arr.Pair[K, V]) (K, V) { return p.First, p.Second })
}
