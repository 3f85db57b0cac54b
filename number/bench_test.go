package number_test

import (
	"testing"

	"github.com/hasbyte1/go-lodash-utils/number"
)

func BenchmarkPercentile(b *testing.B) {
	data := number.RangeWithSteps(0.0, 10_000, 0.75)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		number.Percentile(data, 90)
	}
}

func BenchmarkSum(b *testing.B) {
	data := number.Range(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		number.Sum(data)
	}
}
