// Package fixture builds small deterministic graphs shared by the tests
// and examples of the search packages.
package fixture

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/spatial"
)

// Site is a named location.
type Site struct {
	Name   string
	PX, PY float64
}

// X returns the site's first coordinate.
func (s Site) X() float64 { return s.PX }

// Y returns the site's second coordinate.
func (s Site) Y() float64 { return s.PY }

// String returns the site name.
func (s Site) String() string { return s.Name }

// FiveSites are the nodes of Five, indexed by their number. Every edge of
// Five costs at least its straight-line length, so Euclidean distance is an
// admissible (and consistent) A* heuristic there.
var FiveSites = []Site{
	{"n0", 0, 0},
	{"n1", 2, 1},
	{"n2", 1, 0},
	{"n3", 3, 1},
	{"n4", 2, 0},
}

// Five returns the classic five-node directed graph:
//
//	0→1:10 0→2:5 1→2:2 1→3:1 2→1:3 2→3:9 2→4:2 3→4:4 4→0:7 4→3:6
//
// The cheapest 0→3 route is 0→2→1→3 with weight 9.
func Five() (*core.Graph[Site], error) {
	b, err := core.NewBuilder[Site](spatial.Rect{MaxX: 10, MaxY: 10}, 1)
	if err != nil {
		return nil, err
	}
	edges := []struct {
		from, to int
		w        float64
	}{
		{0, 1, 10}, {0, 2, 5}, {1, 2, 2}, {1, 3, 1}, {2, 1, 3},
		{2, 3, 9}, {2, 4, 2}, {3, 4, 4}, {4, 0, 7}, {4, 3, 6},
	}
	for _, e := range edges {
		label := fmt.Sprintf("%d-%d", e.from, e.to)
		if err := b.AddEdge(FiveSites[e.from], FiveSites[e.to], label, core.Scalar(e.w)); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// LatticeSite names the lattice node at column x, row y.
func LatticeSite(x, y int) Site {
	return Site{Name: fmt.Sprintf("%d_%d", x, y), PX: float64(x), PY: float64(y)}
}

// Lattice returns an n×n four-connected grid with unit-cost edges in both
// directions. Node (x, y) sits at coordinates (x, y).
func Lattice(n int) (*core.Graph[Site], error) {
	bounds := spatial.Rect{MaxX: float64(n - 1), MaxY: float64(n - 1)}
	b, err := core.NewBuilder[Site](bounds, 1, core.WithCapacity(n*n))
	if err != nil {
		return nil, err
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				if err := b.AddBidirectional(LatticeSite(x, y), LatticeSite(x+1, y), "h", core.Scalar(1)); err != nil {
					return nil, err
				}
			}
			if y+1 < n {
				if err := b.AddBidirectional(LatticeSite(x, y), LatticeSite(x, y+1), "v", core.Scalar(1)); err != nil {
					return nil, err
				}
			}
		}
	}
	return b.Build()
}

// RandomLattice returns an n×n four-connected grid whose arcs each cost a
// value drawn from [1, 5) by a source seeded with seed. Every arc costs at
// least its length, so straight-line distance stays an admissible A*
// heuristic. Arcs are emitted right then down per cell, row-major.
func RandomLattice(n int, seed int64) (*core.Graph[Site], error) {
	rng := rand.New(rand.NewSource(seed))
	weight := func() core.Weight { return core.Scalar(1 + rng.Float64()*4) }

	bounds := spatial.Rect{MaxX: float64(n - 1), MaxY: float64(n - 1)}
	b, err := core.NewBuilder[Site](bounds, 2, core.WithCapacity(n*n))
	if err != nil {
		return nil, err
	}
	link := func(a, c Site) error {
		if err := b.AddEdge(a, c, "", weight()); err != nil {
			return err
		}
		return b.AddEdge(c, a, "", weight())
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				if err := link(LatticeSite(x, y), LatticeSite(x+1, y)); err != nil {
					return nil, err
				}
			}
			if y+1 < n {
				if err := link(LatticeSite(x, y), LatticeSite(x, y+1)); err != nil {
					return nil, err
				}
			}
		}
	}
	return b.Build()
}
