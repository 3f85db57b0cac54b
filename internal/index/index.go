// Package index converts signed offsets into forward positions for a
// sequence of known length.
//
// Negative offsets count from the end: -1 is the last element. Each exported
// helper implements one out-of-range policy so that every slicing function in
// the module resolves offsets the same way.
package index

// Normalize resolves i against a sequence of length n.
// It reports false when the resolved position is outside [0, n).
func Normalize(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// Clamp resolves i against a sequence of length n and clamps the result to
// the bound range [0, n]. It never fails.
func Clamp(n, i int) int {
	if i < 0 {
		i += n
	}
	switch {
	case i < 0:
		return 0
	case i > n:
		return n
	}
	return i
}

// Insertion resolves an insertion point. Points past the end insert at n;
// points before -n insert at 0.
func Insertion(n, i int) int {
	switch {
	case i > n:
		return n
	case i < -n:
		return 0
	case i < 0:
		return n + i
	}
	return i
}
