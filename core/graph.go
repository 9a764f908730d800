// File: graph.go
// Role: Read-only query surface of a built Graph: node lookup, nearest
//       queries, outgoing-edge iteration, direct edge lookup.
// Concurrency:
//   - No locks: a Graph never changes after Build.

package core

import (
	"iter"

	"github.com/katalvlaran/geograph/spatial"
)

// Graph is an immutable spatial graph.
type Graph[N Node] struct {
	nodes []vertex[N]
	grid  *spatial.Grid[entry[N]]
	edges int
}

// Len returns the number of nodes.
func (g *Graph[N]) Len() int { return len(g.nodes) }

// EdgeCount returns the number of stored edges.
func (g *Graph[N]) EdgeCount() int { return g.edges }

// Bounds returns the bounding rectangle of the graph's grid.
func (g *Graph[N]) Bounds() spatial.Rect { return g.grid.Bounds() }

// Node returns the caller node behind id. It panics if id is out of range,
// like a slice index.
func (g *Graph[N]) Node(id NodeID) N { return g.nodes[id].value }

// Lookup returns the NodeID of n, found through the grid cell holding n's
// coordinates.
func (g *Graph[N]) Lookup(n N) (NodeID, bool) {
	for _, e := range g.grid.ObjectsAt(n) {
		if e.value == n {
			return e.id, true
		}
	}
	return NoNode, false
}

// Contains reports whether n is a node of g.
func (g *Graph[N]) Contains(n N) bool {
	_, ok := g.Lookup(n)
	return ok
}

// ObjectsAt returns every node located exactly at pt.
func (g *Graph[N]) ObjectsAt(pt spatial.Point) []N {
	found := g.grid.ObjectsAt(pt)
	if len(found) == 0 {
		return nil
	}
	out := make([]N, len(found))
	for i, e := range found {
		out[i] = e.value
	}
	return out
}

// Nearest returns up to k nodes within maxRadius of pt, nearest first.
func (g *Graph[N]) Nearest(pt spatial.Point, k int, maxRadius float64) []N {
	found := g.grid.NClosest(pt, k, maxRadius)
	if len(found) == 0 {
		return nil
	}
	out := make([]N, len(found))
	for i, e := range found {
		out[i] = e.value
	}
	return out
}

// NearestIDs is Nearest returning arena ids.
func (g *Graph[N]) NearestIDs(pt spatial.Point, k int, maxRadius float64) []NodeID {
	found := g.grid.NClosest(pt, k, maxRadius)
	if len(found) == 0 {
		return nil
	}
	out := make([]NodeID, len(found))
	for i, e := range found {
		out[i] = e.id
	}
	return out
}

// Nodes yields every node in grid-scan order.
func (g *Graph[N]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		for e := range g.grid.Objects() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Arcs returns the outgoing arcs of id. The slice is shared with the graph.
func (g *Graph[N]) Arcs(id NodeID) []Arc { return g.nodes[id].out }

// Edges yields the outgoing edges of n; nothing if n is not in g.
func (g *Graph[N]) Edges(n N) iter.Seq[Edge[N]] {
	return func(yield func(Edge[N]) bool) {
		id, ok := g.Lookup(n)
		if !ok {
			return
		}
		for _, a := range g.nodes[id].out {
			if !yield(Edge[N]{From: n, To: g.nodes[a.To].value, Label: a.Label, Weight: a.Weight}) {
				return
			}
		}
	}
}

// EdgeBetween returns the edge from → to, if stored.
func (g *Graph[N]) EdgeBetween(from, to N) (Edge[N], bool) {
	u, ok := g.Lookup(from)
	if !ok {
		return Edge[N]{}, false
	}
	v, ok := g.Lookup(to)
	if !ok {
		return Edge[N]{}, false
	}
	for _, a := range g.nodes[u].out {
		if a.To == v {
			return Edge[N]{From: from, To: to, Label: a.Label, Weight: a.Weight}, true
		}
	}
	return Edge[N]{}, false
}

// WeightBetween returns the cost of the edge from → to in the given mode.
func (g *Graph[N]) WeightBetween(from, to N, mode int) (float64, bool) {
	e, ok := g.EdgeBetween(from, to)
	if !ok {
		return 0, false
	}
	return e.Weight.Value(mode), true
}
