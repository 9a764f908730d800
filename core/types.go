// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node constraint, Weight contract and implementations, Arc/Edge views,
//       sentinel errors.

package core

import (
	"errors"
	"math"

	"github.com/katalvlaran/geograph/spatial"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyGraph indicates Build was called before any edge was added.
	ErrEmptyGraph = errors.New("core: graph has no edges")

	// ErrNilWeight indicates AddEdge received a nil Weight.
	ErrNilWeight = errors.New("core: edge weight is nil")

	// ErrBuilt indicates the builder was already frozen by Build.
	ErrBuilt = errors.New("core: builder already built")
)

// Node is the constraint on caller node types: comparable (value equality
// is node identity) and located in the plane.
type Node interface {
	comparable
	spatial.Point
}

// NodeID addresses a node in a graph's arena. IDs are dense: 0..Len()-1.
type NodeID int

// NoNode is the NodeID of no node.
const NoNode NodeID = -1

// Weight is an edge cost that may differ per travel mode.
type Weight interface {
	// Value returns the cost in the given mode. Modes a weight does not
	// define read as +Inf, which searches treat as impassable.
	Value(mode int) float64
}

// Scalar is a Weight with the same cost in every mode.
type Scalar float64

// Value returns s for any mode.
func (s Scalar) Value(int) float64 { return float64(s) }

// Modal is a Weight with one cost per mode, indexed from 0.
type Modal []float64

// Value returns m[mode], or +Inf when the mode is not defined.
func (m Modal) Value(mode int) float64 {
	if mode < 0 || mode >= len(m) {
		return math.Inf(1)
	}
	return m[mode]
}

// Arc is one stored outgoing edge. Arcs returned by Graph.Arcs are shared
// with the graph and must not be modified.
type Arc struct {
	To     NodeID
	Weight Weight
	Label  string
}

// Edge is the caller-facing view of one edge.
type Edge[N Node] struct {
	From   N
	To     N
	Label  string
	Weight Weight
}

// vertex is one arena slot: the caller's node and its outgoing arcs.
type vertex[N Node] struct {
	value N
	out   []Arc
}

// entry is what the grid stores for each node: the node plus its arena id.
type entry[N Node] struct {
	id    NodeID
	value N
}

func (e entry[N]) X() float64 { return e.value.X() }
func (e entry[N]) Y() float64 { return e.value.Y() }
