package sorts_test

import (
	"fmt"

	"github.com/katalvlaran/lvlbench/config"
	"github.com/katalvlaran/lvlbench/helper"
	"github.com/katalvlaran/lvlbench/instrument"
	"github.com/katalvlaran/lvlbench/sorts"
)

// ExampleInsertion counts the work of sorting a reversed slice.
func ExampleInsertion() {
	h := helper.NewOrdered[int]("insertion", 5, config.Default().Instrumented())
	xs := []int{5, 4, 3, 2, 1}

	if err := sorts.NewInsertion(h).Sort(xs); err != nil {
		fmt.Println("error:", err)

		return
	}
	c := h.Counts()
	fmt.Println(xs)
	fmt.Printf("compares=%d swaps=%d fixes=%d\n",
		c.Get(instrument.Compares), c.Get(instrument.Swaps), c.Get(instrument.Fixes))
	// Output:
	// [1 2 3 4 5]
	// compares=10 swaps=10 fixes=10
}
