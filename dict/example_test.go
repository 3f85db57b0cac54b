package dict_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/dict"
)

func ExampleAssign() {
	merged := dict.Assign(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 3})
	fmt.Println(merged)
	// Output: map[a:1 b:3]
}

func ExampleSortedKeys() {
	fmt.Println(dict.SortedKeys(map[string]bool{"zeta": true, "alpha": true, "mu": false}))
	// Output: [alpha mu zeta]
}

func ExampleOmitByKeys() {
	fmt.Println(dict.OmitByKeys(map[string]int{"a": 1, "b": 2, "c": 3}, "b"))
	// Output: map[a:1 c:3]
}

func ExampleValueOr() {
	ports := map[string]int{"http": 80}
	fmt.Println(dict.ValueOr(ports, "http", 0), dict.ValueOr(ports, "https", 443))
	// Output: 80 443
}
