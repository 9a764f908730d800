package bfs_test

import (
	"testing"

	"github.com/katalvlaran/geograph/bfs"
	"github.com/katalvlaran/geograph/internal/fixture"
)

// BenchmarkBounded_Lattice runs a half-diameter traversal on a 100×100 grid.
func BenchmarkBounded_Lattice(b *testing.B) {
	const M = 100
	g, err := fixture.Lattice(M)
	if err != nil {
		b.Fatal(err)
	}
	origin := fixture.LatticeSite(M/2, M/2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w, _ := bfs.New(g, origin, M/2, 0)
		_ = w.Execute()
	}
}
