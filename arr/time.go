package arr

import "time"

// Earliest returns the earliest of times, or the zero time and false when
// times is empty.
func Earliest(times ...time.Time) (time.Time, bool) {
	return EarliestBy(times, func(t time.Time) time.Time { return t })
}

// Latest returns the latest of times. An empty input yields the zero
// time.Time.
func Latest(times ...time.Time) time.Time {
	t, _ := LatestBy(times, func(t time.Time) time.Time { return t })
	return t
}

// EarliestBy returns the element whose timestamp, extracted by fn, is the
// earliest. On ties the first such element wins.
func EarliestBy[T any](items []T, fn func(T) time.Time) (T, bool) {
	return pickByTime(items, fn, time.Time.Before)
}

// LatestBy returns the element whose timestamp, extracted by fn, is the
// latest. On ties the first such element wins.
func LatestBy[T any](items []T, fn func(T) time.Time) (T, bool) {
	return pickByTime(items, fn, time.Time.After)
}

func pickByTime[T any](items []T, fn func(T) time.Time, better func(a, b time.Time) bool) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best, bestTime := items[0], fn(items[0])
	for _, item := range items[1:] {
		if t := fn(item); better(t, bestTime) {
			best, bestTime = item, t
		}
	}
	return best, true
}
