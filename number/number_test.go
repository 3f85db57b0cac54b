package number_test

import (
	"math"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-lodash-utils/number"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, number.Clamp(5, 0, 10))
	assert.Equal(t, 0, number.Clamp(-3, 0, 10))
	assert.Equal(t, 10, number.Clamp(42, 0, 10))
	assert.Equal(t, 1.5, number.Clamp(1.5, 1.0, 2.0))
	assert.Equal(t, "m", number.Clamp("z", "a", "m"))
}

func TestNearestPowerOfTwo(t *testing.T) {
	cases := map[int]int{
		-5:      1,
		0:       1,
		1:       1,
		2:       2,
		3:       4,
		100:     128,
		1024:    1024,
		1025:    2048,
		1 << 30: 1 << 30,
		1 << 40: 1 << 30,
	}
	for in, want := range cases {
		assert.Equal(t, want, number.NearestPowerOfTwo(in), "NearestPowerOfTwo(%d)", in)
	}
}

func TestInterpolate(t *testing.T) {
	lerp := number.Interpolate(10, 20)
	assert.Equal(t, 10.0, lerp(0))
	assert.Equal(t, 15.0, lerp(0.5))
	assert.Equal(t, 20.0, lerp(1))
	assert.Equal(t, 10.0, lerp(-2))
	assert.Equal(t, 20.0, lerp(7))
}

func TestSumAndProduct(t *testing.T) {
	assert.Equal(t, 15, number.Sum([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0, number.Sum([]int{}))
	assert.InDelta(t, 6.6, number.Sum([]float64{1.1, 2.2, 3.3}), 1e-9)

	assert.Equal(t, 120, number.Product([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 1, number.Product([]int(nil)))
	assert.Equal(t, 0, number.Product([]int{3, 0, 7}))
}

type item struct {
	name  string
	price float64
	qty   int
}

func TestByVariants(t *testing.T) {
	items := []item{{"a", 2.5, 2}, {"b", 1.5, 3}, {"c", 5, 1}}

	assert.Equal(t, 6, number.SumBy(items, func(i item) int { return i.qty }))
	assert.Equal(t, 6, number.ProductBy(items, func(i item) int { return i.qty }))
	assert.Equal(t, 1, number.ProductBy([]item{}, func(i item) int { return i.qty }))
	assert.InDelta(t, 3.0, number.MeanBy(items, func(i item) float64 { return i.price }), 1e-9)
	assert.Equal(t, 0.0, number.MeanBy(nil, func(i item) float64 { return i.price }))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 3, number.Mean([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 2, number.Mean([]int{1, 2, 3, 4}))
	assert.Equal(t, 2.5, number.Mean([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, number.Mean([]float64{}))
}

func TestPercentile(t *testing.T) {
	data := []int{5, 1, 4, 2, 3}

	got, ok := number.Percentile(data, 25)
	assert.True(t, ok)
	assert.Equal(t, 2.0, got)

	got, ok = number.Percentile(data, 0)
	assert.True(t, ok)
	assert.Equal(t, 1.0, got)

	got, ok = number.Percentile(data, 100)
	assert.True(t, ok)
	assert.Equal(t, 5.0, got)

	got, ok = number.Percentile([]float64{1, 2, 3, 4}, 50)
	assert.True(t, ok)
	assert.Equal(t, 2.5, got)

	_, ok = number.Percentile(data, 101)
	assert.False(t, ok)
	_, ok = number.Percentile(data, -1)
	assert.False(t, ok)
	_, ok = number.Percentile(data, math.NaN())
	assert.False(t, ok)
	_, ok = number.Percentile([]int{}, 50)
	assert.False(t, ok)

	assert.Equal(t, []int{5, 1, 4, 2, 3}, data, "input must not be reordered")
}

func TestMedian(t *testing.T) {
	got, ok := number.Median([]int{7})
	assert.True(t, ok)
	assert.Equal(t, 7.0, got)

	got, ok = number.Median([]int{3, 1, 2})
	assert.True(t, ok)
	assert.Equal(t, 2.0, got)

	_, ok = number.Median([]float64{})
	assert.False(t, ok)
}

func TestPercentileIsBounded(t *testing.T) {
	for i := 0; i < 20; i++ {
		data := make([]int, randomdata.Number(1, 50))
		for j := range data {
			data[j] = randomdata.Number(-1000, 1000)
		}
		lo, hi := float64(data[0]), float64(data[0])
		for _, v := range data {
			lo, hi = math.Min(lo, float64(v)), math.Max(hi, float64(v))
		}
		p := float64(randomdata.Number(0, 101))
		got, ok := number.Percentile(data, p)
		assert.True(t, ok)
		assert.GreaterOrEqual(t, got, lo)
		assert.LessOrEqual(t, got, hi)
	}
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, number.Range(4))
	assert.Equal(t, []int{0, -1, -2, -3}, number.Range(-4))
	assert.Equal(t, []int{}, number.Range(0))
}

func TestRangeFrom(t *testing.T) {
	assert.Equal(t, []int{5, 6, 7}, number.RangeFrom(5, 3))
	assert.Equal(t, []int{5, 4, 3}, number.RangeFrom(5, -3))
	assert.Equal(t, []float64{1.5, 2.5}, number.RangeFrom(1.5, 2))
	assert.Equal(t, []int{}, number.RangeFrom(9, 0))
	assert.Equal(t, []uint8{}, number.RangeFrom(uint8(0), -3))
	assert.Equal(t, []uint{}, number.RangeFrom(uint(10), -2))
	assert.Equal(t, []uint8{253, 254}, number.RangeFrom(uint8(253), 2))
}

func TestRangeWithSteps(t *testing.T) {
	assert.Equal(t, []int{0, 5, 10, 15}, number.RangeWithSteps(0, 20, 5))
	assert.Equal(t, []int{10, 7, 4, 1}, number.RangeWithSteps(10, 0, -3))
	assert.Equal(t, []float64{0, 0.5, 1, 1.5}, number.RangeWithSteps(0.0, 2.0, 0.5))
	assert.Equal(t, []int{}, number.RangeWithSteps(0, 10, 0))
	assert.Equal(t, []int{}, number.RangeWithSteps(0, 10, -1))
	assert.Equal(t, []int{}, number.RangeWithSteps(10, 0, 1))
	assert.Equal(t, []int{}, number.RangeWithSteps(3, 3, 1))
}

func TestRangeWithStepsStopsOnOverflow(t *testing.T) {
	assert.Equal(t, []int8{120, 125}, number.RangeWithSteps[int8](120, 127, 5))
	assert.Equal(t, []uint8{250}, number.RangeWithSteps[uint8](250, 255, 10))
}
