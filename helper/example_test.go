package helper_test

import (
	"fmt"

	"github.com/katalvlaran/lvlbench/config"
	"github.com/katalvlaran/lvlbench/helper"
)

// ExampleHelper walks one instrumented run of a tiny bubble pass.
func ExampleHelper() {
	h := helper.NewOrdered[int]("bubble", 4, config.Default().Instrumented())
	if err := h.InitRuns(4, 1); err != nil {
		fmt.Println("error:", err)

		return
	}

	xs := []int{3, 1, 4, 2}
	for i := 1; i < len(xs); i++ {
		h.SwapStableConditional(xs, i)
	}
	fmt.Println(xs)
	fmt.Println(h.Counts())

	if err := h.GatherStatistic(); err != nil {
		fmt.Println("error:", err)

		return
	}
	compares, _ := h.StatPack().Get("compares")
	fmt.Println(compares.Values())
	// Output:
	// [1 3 2 4]
	// compares=3 swaps=2 copies=4 hits=14 fixes=2 lookups=0
	// [3]
}
