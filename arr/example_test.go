package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/arr"
)

func ExampleFilter() {
	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2 4]
}

func ExampleMap() {
	doubled := arr.Map([]int{1, 2, 3}, func(n, _ int) int { return n * 2 })
	fmt.Println(doubled)
	// Output: [2 4 6]
}

func ExampleChunk() {
	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	for _, c := range chunks {
		fmt.Println(c)
	}
	// Output:
	// [1 2 3]
	// [4 5 6]
	// [7]
}

func ExampleFlatten() {
	flat := arr.Flatten([][]int{{1, 2}, {3, 4}, {5}})
	fmt.Println(flat)
	// Output: [1 2 3 4 5]
}

func ExampleGroupBy() {
	groups := arr.GroupBy([]int{1, 2, 3, 4}, func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	fmt.Println(groups["even"])
	// Output: [2 4]
}

func ExampleInterleave() {
	fmt.Println(arr.Interleave([]int{1, 2, 3}, []int{4, 5, 6, 7}, []int{8, 9}))
	// Output: [1 4 8 2 5 9 3 6 7]
}

func ExampleSplice() {
	fmt.Println(arr.Splice([]int{1, 2, 3, 4, 5}, -2, 99))
	// Output: [1 2 3 99 4 5]
}

func ExampleNth() {
	items := []int{1, 2, 3, 4, 5}
	v, _ := arr.Nth(items, -2)
	_, err := arr.Nth(items, 10)
	fmt.Println(v, err)
	// Output: 4 arr: index out of range: 10 (length 5)
}

func ExampleFindDuplicates() {
	fmt.Println(arr.FindDuplicates([]int{1, 2, 2, 3, 3, 4}))
	// Output: [2 3]
}

func ExamplePartitionBy() {
	parts := arr.PartitionBy([]int{25, 30, 25, 40}, func(age int) int { return age })
	fmt.Println(parts)
	// Output: [[25 25] [30] [40]]
}

func ExampleReduceRight() {
	s := arr.ReduceRight([]string{"Alice", "Bob", "Carol"}, func(acc, name string, _ int) string {
		if acc == "" {
			return name
		}
		return acc + " " + name
	}, "")
	fmt.Println(s)
	// Output: Carol Bob Alice
}

func ExampleSlice() {
	fmt.Println(arr.Slice([]int{0, 1, 2, 3, 4}, 1, -1), arr.Subset([]int{0, 1, 2, 3, 4}, -3, 2))
	// Output: [1 2 3] [2 3]
}
