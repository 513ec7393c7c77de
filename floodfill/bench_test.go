package floodfill_test

import (
	"testing"

	"github.com/katalvlaran/floodgrid/floodfill"
)

// BenchmarkRoute_Open measures Route on an empty 200×200 grid.
// Complexity: O(W×H×8)
func BenchmarkRoute_Open(b *testing.B) {
	g, err := floodfill.NewGrid(200, floodfill.WithLogger(quietLogger()))
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Route()
	}
}

// BenchmarkRandomize measures Randomize (wall, punch, route) on the default grid
// with a deterministic seed.
func BenchmarkRandomize(b *testing.B) {
	g, err := floodfill.NewGrid(floodfill.DefaultSize, floodfill.WithSeed(42), floodfill.WithLogger(quietLogger()))
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Randomize()
	}
}
