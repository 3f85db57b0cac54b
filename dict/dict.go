package dict

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// ─────────────────────────────────────────────────────────────────────────────
// Keys & values
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of every map in maps. A key present in several maps
// is returned once per map.
func Keys[K comparable, V any](maps ...map[K]V) []K {
	out := make([]K, 0, size(maps))
	for _, m := range maps {
		for k := range m {
			out = append(out, k)
		}
	}
	return out
}

// UniqKeys returns the distinct keys of maps.
func UniqKeys[K comparable, V any](maps ...map[K]V) []K {
	seen := make(map[K]struct{}, size(maps))
	out := make([]K, 0, size(maps))
	for _, m := range maps {
		for k := range m {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				out = append(out, k)
			}
		}
	}
	return out
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	out := Keys(m)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Values returns the values of every map in maps.
func Values[K comparable, V any](maps ...map[K]V) []V {
	out := make([]V, 0, size(maps))
	for _, m := range maps {
		for _, v := range m {
			out = append(out, v)
		}
	}
	return out
}

// UniqValues returns the distinct values of maps.
func UniqValues[K, V comparable](maps ...map[K]V) []V {
	seen := make(map[V]struct{}, size(maps))
	out := make([]V, 0)
	for _, m := range maps {
		for _, v := range m {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}
	return out
}

// HasKey reports whether key is present in m.
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// ValueOr returns m[key], or fallback when key is absent.
// A present key holding the zero value is returned as is.
func ValueOr[K comparable, V any](m map[K]V, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// FindKey returns a key whose value equals value.
// When several keys match, which one is returned is unspecified.
func FindKey[K, V comparable](m map[K]V, value V) (K, bool) {
	return FindKeyBy(m, func(_ K, v V) bool { return v == value })
}

// FindKeyBy returns a key whose entry satisfies fn.
func FindKeyBy[K comparable, V any](m map[K]V, fn func(K, V) bool) (K, bool) {
	for k, v := range m {
		if fn(k, v) {
			return k, true
		}
	}
	var zero K
	return zero, false
}

func size[K comparable, V any](maps []map[K]V) int {
	n := 0
	for _, m := range maps {
		n += len(m)
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// PickBy returns the entries of m satisfying fn.
func PickBy[K comparable, V any](m map[K]V, fn func(K, V) bool) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if fn(k, v) {
			out[k] = v
		}
	}
	return out
}

// PickByKeys returns the entries of m whose key is in keys.
func PickByKeys[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// PickByValues returns the entries of m whose value is in values.
func PickByValues[K, V comparable](m map[K]V, values ...V) map[K]V {
	set := toSet(values)
	return PickBy(m, func(_ K, v V) bool {
		_, ok := set[v]
		return ok
	})
}

// OmitBy returns the entries of m not satisfying fn.
func OmitBy[K comparable, V any](m map[K]V, fn func(K, V) bool) map[K]V {
	return PickBy(m, func(k K, v V) bool { return !fn(k, v) })
}

// OmitByKeys returns m without the given keys.
func OmitByKeys[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	set := toSet(keys)
	return OmitBy(m, func(k K, _ V) bool {
		_, ok := set[k]
		return ok
	})
}

// OmitByValues returns the entries of m whose value is not in values.
func OmitByValues[K, V comparable](m map[K]V, values ...V) map[K]V {
	set := toSet(values)
	return OmitBy(m, func(_ K, v V) bool {
		_, ok := set[v]
		return ok
	})
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
