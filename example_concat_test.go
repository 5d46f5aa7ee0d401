package accumulators_test

import (
	"fmt"

	"github.com/elastiflow/accumulators"
)

func ExampleConcat() {
	flat := accumulators.Concat(
		accumulators.FromSlice([]string{"1", "2", "3"}),
		accumulators.FromSlice([]string{"a", "b", "c"}),
	)
	for _, v := range flat.Slice() {
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
	// a
	// b
	// c
}

func ExampleSequence_Append() {
	seq := accumulators.FromSlice([]int{1, 2}).
		Append(accumulators.FromValue(3))
	fmt.Println(seq.Slice())
	// Output: [1 2 3]
}
