package spatial

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"
)

// GridBuilder accumulates points into grid cells. Cells are half-open
// ranges [min+i*res, min+(i+1)*res); the last row and column also hold
// points lying exactly on the max edges.
//
// Complexity: Insert is O(1) amortized; Build is O(cells + points).
type GridBuilder[P Point] struct {
	bounds     Rect
	resolution float64
	cols, rows int
	cells      map[int][]P
	count      int
	frozen     bool
}

// NewGridBuilder returns a builder over bounds with square cells of edge
// length resolution. Returns ErrBadResolution if resolution < 1 and
// ErrBadBounds for an inverted or non-finite rectangle.
func NewGridBuilder[P Point](bounds Rect, resolution int) (*GridBuilder[P], error) {
	if resolution < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadResolution, resolution)
	}
	if err := bounds.validate(); err != nil {
		return nil, err
	}

	res := float64(resolution)
	return &GridBuilder[P]{
		bounds:     bounds,
		resolution: res,
		cols:       int(math.Floor(bounds.Width()/res)) + 1,
		rows:       int(math.Floor(bounds.Height()/res)) + 1,
		cells:      make(map[int][]P),
	}, nil
}

// Insert adds p to its owning cell.
func (b *GridBuilder[P]) Insert(p P) error {
	if b.frozen {
		return ErrFrozen
	}
	if !b.bounds.Contains(p) {
		return fmt.Errorf("%w: (%g, %g) not in %+v", ErrOutOfBounds, p.X(), p.Y(), b.bounds)
	}
	col, row := b.cellOf(p.X(), p.Y())
	key := row*b.cols + col
	b.cells[key] = append(b.cells[key], p)
	b.count++
	return nil
}

// Len returns the number of inserted points.
func (b *GridBuilder[P]) Len() int { return b.count }

// Build freezes the builder and returns the read-only grid. Later Inserts
// fail with ErrFrozen.
func (b *GridBuilder[P]) Build() *Grid[P] {
	b.frozen = true

	cells := make([][][]P, b.rows)
	for row := range cells {
		cells[row] = make([][]P, b.cols)
	}
	for key, pts := range b.cells {
		row, col := key/b.cols, key%b.cols
		cells[row][col] = slices.Clip(pts)
	}
	b.cells = nil

	return &Grid[P]{
		bounds:     b.bounds,
		resolution: b.resolution,
		cols:       b.cols,
		rows:       b.rows,
		cells:      cells,
		count:      b.count,
	}
}

func (b *GridBuilder[P]) cellOf(x, y float64) (col, row int) {
	return clampCell(x, b.bounds.MinX, b.resolution, b.cols), clampCell(y, b.bounds.MinY, b.resolution, b.rows)
}

// Grid is a frozen spatial index. cells[row][col] lists the points of one cell.
type Grid[P Point] struct {
	bounds     Rect
	resolution float64
	cols, rows int
	cells      [][][]P
	count      int
}

// Bounds returns the grid's bounding rectangle.
func (g *Grid[P]) Bounds() Rect { return g.bounds }

// Dims returns the column and row counts.
func (g *Grid[P]) Dims() (cols, rows int) { return g.cols, g.rows }

// Len returns the number of stored points.
func (g *Grid[P]) Len() int { return g.count }

// NClosest returns up to k stored points within maxRadius of pt, nearest
// first. Points at equal distance come back in no guaranteed order. A query
// point with a NaN coordinate matches nothing.
func (g *Grid[P]) NClosest(pt Point, k int, maxRadius float64) []P {
	matches := g.Neighbors(pt, k, maxRadius)
	if len(matches) == 0 {
		return nil
	}
	out := make([]P, len(matches))
	for i, m := range matches {
		out[i] = m.Item
	}
	return out
}

// Neighbors is NClosest with the distance of every match.
func (g *Grid[P]) Neighbors(pt Point, k int, maxRadius float64) []Match[P] {
	if k <= 0 || maxRadius < 0 || math.IsNaN(maxRadius) {
		return nil
	}
	x, y := pt.X(), pt.Y()
	if math.IsNaN(x) || math.IsNaN(y) {
		return nil
	}
	// The search square misses the grid entirely.
	if x+maxRadius < g.bounds.MinX || x-maxRadius > g.bounds.MaxX ||
		y+maxRadius < g.bounds.MinY || y-maxRadius > g.bounds.MaxY {
		return nil
	}

	colLo := clampCell(x-maxRadius, g.bounds.MinX, g.resolution, g.cols)
	colHi := clampCell(x+maxRadius, g.bounds.MinX, g.resolution, g.cols)
	rowLo := clampCell(y-maxRadius, g.bounds.MinY, g.resolution, g.rows)
	rowHi := clampCell(y+maxRadius, g.bounds.MinY, g.resolution, g.rows)

	var found []Match[P]
	for row := rowLo; row <= rowHi; row++ {
		for col := colLo; col <= colHi; col++ {
			for _, p := range g.cells[row][col] {
				if d := Distance(pt, p); d <= maxRadius {
					found = append(found, Match[P]{Item: p, Distance: d})
				}
			}
		}
	}

	slices.SortFunc(found, func(a, b Match[P]) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	if len(found) > k {
		found = found[:k]
	}
	return found
}

// ObjectsAt returns every stored point whose coordinates equal pt exactly.
// A point outside the bounds yields nil.
func (g *Grid[P]) ObjectsAt(pt Point) []P {
	if !g.bounds.Contains(pt) {
		return nil
	}
	col := clampCell(pt.X(), g.bounds.MinX, g.resolution, g.cols)
	row := clampCell(pt.Y(), g.bounds.MinY, g.resolution, g.rows)

	var out []P
	for _, p := range g.cells[row][col] {
		if SameLocation(p, pt) {
			out = append(out, p)
		}
	}
	return out
}

// Objects yields every stored point in grid-scan order (row-major).
func (g *Grid[P]) Objects() iter.Seq[P] {
	return func(yield func(P) bool) {
		for _, row := range g.cells {
			for _, cell := range row {
				for _, p := range cell {
					if !yield(p) {
						return
					}
				}
			}
		}
	}
}

// clampCell maps a coordinate onto a cell index in [0, n-1]. NaN maps to 0.
func clampCell(v, origin, res float64, n int) int {
	f := math.Floor((v - origin) / res)
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > float64(n-1):
		return n - 1
	}
	return int(f)
}
