// Package spatial provides a uniform bucket grid over a bounding rectangle.
//
// A GridBuilder accumulates points into half-open cells; Build freezes the
// cells into a dense [row][col] array and returns a read-only Grid that
// answers nearest-point and exact-point queries by scanning only the cells
// a query can touch.
//
// A built Grid is immutable and safe for concurrent readers. A GridBuilder
// is not safe for concurrent use.
package spatial

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for spatial operations.
var (
	// ErrBadResolution indicates a cell resolution below 1.
	ErrBadResolution = errors.New("spatial: resolution must be >= 1")

	// ErrBadBounds indicates a rectangle whose max corner lies below its min corner,
	// or one with non-finite coordinates.
	ErrBadBounds = errors.New("spatial: invalid bounding rectangle")

	// ErrOutOfBounds indicates a point outside the grid's bounding rectangle.
	ErrOutOfBounds = errors.New("spatial: point outside bounds")

	// ErrFrozen indicates an insertion after Build.
	ErrFrozen = errors.New("spatial: grid already built")
)

// Point is anything with planar coordinates.
type Point interface {
	X() float64
	Y() float64
}

// Coord is a plain coordinate pair that satisfies Point.
type Coord [2]float64

// Pt returns the Coord (x, y).
func Pt(x, y float64) Coord { return Coord{x, y} }

// X returns the first coordinate.
func (c Coord) X() float64 { return c[0] }

// Y returns the second coordinate.
func (c Coord) Y() float64 { return c[1] }

// String formats the coordinate as "(x, y)".
func (c Coord) String() string { return fmt.Sprintf("(%g, %g)", c[0], c[1]) }

// Rect is an axis-aligned bounding rectangle. Both edges are inclusive.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	x, y := p.X(), p.Y()
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Width returns MaxX-MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY-MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

func (r Rect) validate() error {
	for _, v := range [...]float64{r.MinX, r.MinY, r.MaxX, r.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coordinate in %+v", ErrBadBounds, r)
		}
	}
	if r.MaxX < r.MinX || r.MaxY < r.MinY {
		return fmt.Errorf("%w: %+v", ErrBadBounds, r)
	}
	return nil
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X()-b.X(), a.Y()-b.Y())
}

// SameLocation reports whether a and b have identical coordinates.
func SameLocation(a, b Point) bool {
	return a.X() == b.X() && a.Y() == b.Y()
}

// Match pairs a stored point with its distance to a query point.
type Match[P Point] struct {
	Item     P
	Distance float64
}
