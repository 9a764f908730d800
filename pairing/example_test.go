package pairing_test

import (
	"fmt"

	"github.com/katalvlaran/geograph/pairing"
)

// ExampleIndex shows lowering a queued key by identity.
func ExampleIndex() {
	ix := pairing.NewIndex[string](3)
	_ = ix.Add("depot", 12)
	_ = ix.Add("harbor", 7)
	_ = ix.Add("station", 9)

	// a cheaper route to the depot was found
	_, _ = ix.Update("depot", 3)

	for !ix.IsEmpty() {
		it, _ := ix.ExtractMin()
		fmt.Println(it.Key, it.Priority)
	}
	// Output:
	// depot 3
	// harbor 7
	// station 9
}
