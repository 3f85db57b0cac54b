package arr

import "github.com/hasbyte1/go-lodash-utils/internal/random"

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := clone(items)
	random.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns one element chosen uniformly at random, or the zero value
// when items is empty.
func Sample[T any](items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[random.IntN(len(items))]
}

// Samples returns n distinct positions of items chosen uniformly at random
// (without replacement). n is capped at len(items); a non-positive n or an
// empty items yields an empty slice.
func Samples[T any](items []T, n int) []T {
	n = min(max(n, 0), len(items))
	pool := clone(items)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		remaining := len(pool) - i
		j := i + random.IntN(remaining)
		pool[i], pool[j] = pool[j], pool[i]
		out[i] = pool[i]
	}
	return out
}
