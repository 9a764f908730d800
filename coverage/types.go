// Package coverage computes isochrones: every node reachable from an origin
// within a maximum cumulative distance, each with the cheapest path the
// traversal discovered.
//
// The traversal is depth-first. Walking an arc u→v at cost δ:
//
//   - v has no record: create one at cost(u)+δ under u and recurse into it
//     while its cost is below the bound; otherwise it stays a frontier leaf.
//   - v has a record and cost(u)+δ is strictly cheaper: detach v from its
//     old predecessor, re-parent it under u with the new cost, and recurse
//     into it again while below the bound, so its subtree is repriced.
//
// The origin is always expanded. After the walk, every record without
// successors is a leaf; Result returns them cheapest first. Leaves created
// past the bound carry an upper bound of their true cost; Within keeps only
// the leaves inside it.
//
// Complexity: O(V + E) when every node is first reached along its cheapest
// path; each re-parenting walks the moved subtree again. Memory: O(V)
// records plus the recursion stack.
//
// Edge weights of +Inf are impassable; negative or NaN weights abort
// Execute with ErrNegativeWeight.
package coverage

import (
	"cmp"
	"errors"
	"slices"

	"github.com/katalvlaran/geograph/core"
)

// Sentinel errors for coverage traversal.
var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("coverage: graph is nil")

	// ErrNodeNotFound indicates the origin is not a node of the graph.
	ErrNodeNotFound = errors.New("coverage: origin not found")

	// ErrBadMaxDistance indicates a negative or NaN bound.
	ErrBadMaxDistance = errors.New("coverage: max distance must be non-negative")

	// ErrBadMode indicates a negative weight mode.
	ErrBadMode = errors.New("coverage: weight mode must be non-negative")

	// ErrNegativeWeight indicates a negative or NaN arc weight.
	ErrNegativeWeight = errors.New("coverage: negative edge weight encountered")

	// ErrAlreadyExecuted is returned by a second call to Execute.
	ErrAlreadyExecuted = errors.New("coverage: traversal already executed")
)

// Record is one reached node in the coverage tree: its cost from the
// origin, its predecessor and its current successors.
type Record[N core.Node] struct {
	Node   N
	Weight float64

	id   core.NodeID
	pred *Record[N]
	succ map[core.NodeID]*Record[N]
}

// Pred returns the predecessor record, nil for the origin.
func (r *Record[N]) Pred() *Record[N] { return r.pred }

// Successors returns the records currently hanging off r, in node-id order.
func (r *Record[N]) Successors() []*Record[N] {
	out := make([]*Record[N], 0, len(r.succ))
	for _, s := range r.succ {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *Record[N]) int { return cmp.Compare(a.id, b.id) })
	return out
}

// IsLeaf reports whether r has no successors.
func (r *Record[N]) IsLeaf() bool { return len(r.succ) == 0 }

// Path returns the nodes from the origin to r.
func (r *Record[N]) Path() []N {
	var path []N
	for cur := r; cur != nil; cur = cur.pred {
		path = append(path, cur.Node)
	}
	slices.Reverse(path)
	return path
}

func (r *Record[N]) attach(child *Record[N]) {
	if r.succ == nil {
		r.succ = make(map[core.NodeID]*Record[N])
	}
	r.succ[child.id] = child
	child.pred = r
}

func (r *Record[N]) detach(child *Record[N]) {
	delete(r.succ, child.id)
	child.pred = nil
}
