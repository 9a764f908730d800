package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/geograph/bfs"
	"github.com/katalvlaran/geograph/internal/fixture"
)

// ExampleWalker_Result lists the unit-lattice nodes within one hop of a corner.
func ExampleWalker_Result() {
	g, _ := fixture.Lattice(3)
	w, _ := bfs.New(g, fixture.LatticeSite(0, 0), 1, 0)
	if err := w.Execute(); err != nil {
		fmt.Println(err)
		return
	}
	res := w.Result()
	for _, n := range w.Order() {
		if d, ok := res[n]; ok {
			fmt.Println(n, d)
		}
	}
	// Output:
	// 0_0 0
	// 1_0 1
	// 0_1 1
}
