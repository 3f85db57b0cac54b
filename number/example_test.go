package number_test

import (
	"fmt"
	"time"

	"github.com/hasbyte1/go-lodash-utils/number"
)

func ExampleSum() {
	fmt.Println(number.Sum([]int{1, 2, 3}), number.Product([]int{1, 2, 3, 4}))
	// Output: 6 24
}

func ExamplePercentile() {
	p, ok := number.Percentile([]int{1, 2, 3, 4, 5}, 25)
	fmt.Println(p, ok)
	// Output: 2 true
}

func ExampleRangeWithSteps() {
	fmt.Println(number.RangeWithSteps(0, 20, 5))
	fmt.Println(number.RangeWithSteps(10, 0, -3))
	// Output:
	// [0 5 10 15]
	// [10 7 4 1]
}

func ExampleDurationBetween() {
	start := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(36 * time.Hour)
	fmt.Println(number.DurationBetween(start, end, number.Days), number.DurationBetween(end, start, number.Hours))
	// Output: 1 36
}
