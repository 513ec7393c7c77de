// File: floodfill/example_test.go
package floodfill_test

import (
	"fmt"

	"github.com/katalvlaran/floodgrid/floodfill"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Route
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Route floods a 5×5 grid with one wall in the middle.
// Scenario:
//
//   - Start (1,1), End (3,3)
//   - Wall at (2,2), the only cell adjacent to both endpoints
//   - End therefore costs 3 instead of 2
//
// Complexity: O(W·H·8), Memory: O(W·H)
func ExampleGrid_Route() {
	g, _ := floodfill.NewGrid(5)
	_, _ = g.PlaceWall(2, 2)

	g.Route()
	fmt.Println("reached:", g.Reached())
	fmt.Println("cost:", g.MoveCost(g.End()))
	fmt.Println("path:", g.Path())

	// Output:
	// reached: true
	// cost: 3
	// path: [(3,3) (3,2) (2,1) (1,1)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Step
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Step drives the same computation one expansion at a time,
// as a visualizer would on a timer.
func ExampleGrid_Step() {
	g, _ := floodfill.NewGrid(4)

	g.Begin()
	for i := 1; ; i++ {
		done := g.Step()
		fmt.Printf("step %d: checked=%d queued=%d\n", i, len(g.Checked()), len(g.Queued()))
		if done {
			break
		}
	}
	fmt.Println("path:", g.Path())

	// Output:
	// step 1: checked=1 queued=8
	// step 2: checked=2 queued=7
	// step 3: checked=3 queued=9
	// step 4: checked=4 queued=8
	// step 5: checked=5 queued=10
	// step 6: checked=6 queued=9
	// step 7: checked=7 queued=8
	// step 8: checked=8 queued=7
	// step 9: checked=9 queued=6
	// path: [(2,2) (1,1)]
}
