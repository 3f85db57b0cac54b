package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/collections"
)

func makeInts(n int) *collections.Collection[int] {
	return collections.From(arr.Times(n, func(i int) int { return i + 1 }))
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(func(n, _ int) bool { return n%2 == 0 })
	}
}

func BenchmarkMapFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Map(c, func(n, _ int) int { return n * 2 })
	}
}

func BenchmarkReduceFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Reduce(c, func(acc, n, _ int) int { return acc + n }, 0)
	}
}

func BenchmarkSort(b *testing.B) {
	c := makeInts(10_000).Shuffle()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Sort(func(x, y int) bool { return x < y })
	}
}

func BenchmarkChainedPipeline(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Filter(func(n, _ int) bool { return n%3 == 0 }).
			Reverse().
			Subset(0, 500).
			Chunk(50)
	}
}
