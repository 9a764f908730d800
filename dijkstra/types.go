// Package dijkstra implements single-source shortest-path search over a
// core.Graph: Dijkstra, A*, and distance-bounded Dijkstra, all driven by one
// search loop parameterized by a Relaxer and a Terminator.
//
// The loop keeps a closed set of finalized nodes and a pairing-heap priority
// index keyed by tentative distance. It repeatedly extracts the minimum node
// u; if the Terminator reports done it stops, otherwise for every outgoing
// arc u→v with v not closed it queues v (at +Inf on first sight) and asks the
// Relaxer whether going through u improves v. Improvements are pushed with a
// true decrease-key rather than duplicate heap entries.
//
// Complexity:
//
//   - Time:  O(E + V log V) amortized with the pairing heap.
//   - Space: O(V) for the records, the index and the closed set.
//
// Strategies:
//
//   - Additive()           cost(v) = cost(u) + w(u,v) in the requested mode.
//   - Heuristic(est, h, f) same cost, but v is queued at cost(v) + h·f·est(v).
//     Early termination at the destination is optimal only if the estimate
//     never overstates the remaining cost (admissible); this is not checked.
//   - AtNode(dest)         stop when dest is extracted.
//   - Beyond(max)          stop when the extracted node's cost exceeds max.
//
// Ties never replace the incumbent predecessor: the first path found wins.
//
// Edge weights of +Inf are impassable. Negative or NaN weights abort the
// search with ErrNegativeWeight.
//
// A Search is single-use and confined to one goroutine; the Graph it reads
// may be shared by any number of concurrent searches.
//
// Errors (sentinel):
//
//   - ErrNilGraph         if the graph pointer is nil.
//   - ErrNodeNotFound     if the origin or destination is not in the graph.
//   - ErrNegativeWeight   if a negative or NaN edge weight is met.
//   - ErrBadMaxDistance   if a distance bound is negative or NaN.
//   - ErrBadHeuristic     if an A* weight or factor is negative or not finite.
//   - ErrAlreadyExecuted  if Execute is called twice.
//
// Example usage:
//
//	s, err := dijkstra.NewDijkstra(g, from, to, dijkstra.WithMode(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := s.Execute(); err != nil {
//	    log.Fatal(err)
//	}
//	if p := s.Result(); p.Valid {
//	    fmt.Println(p.Nodes, p.Weight)
//	}
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/geograph/core"
)

// Sentinel errors returned by the search constructors and Execute.
var (
	// ErrNilGraph indicates that a nil graph was passed to a constructor.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates the origin or destination is not a node of the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNegativeWeight indicates a negative (or NaN) edge weight in the searched mode.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative or NaN distance bound.
	ErrBadMaxDistance = errors.New("dijkstra: max distance must be non-negative")

	// ErrBadHeuristic indicates a negative or non-finite heuristic weight or factor.
	ErrBadHeuristic = errors.New("dijkstra: heuristic weight and factor must be finite and non-negative")

	// ErrAlreadyExecuted indicates Execute was called on a search that already ran.
	ErrAlreadyExecuted = errors.New("dijkstra: search already executed")
)

// Record is the per-node state of one search: the best known cost from the
// origin and the predecessor on that path (core.NoNode for the origin and
// for nodes not reached yet). Following Pred links from any reached record
// ends at the origin.
type Record struct {
	Node   core.NodeID
	Weight float64
	Pred   core.NodeID
}

// Path is a route from the origin to a destination. Valid is false when
// no route was found; Nodes is then empty.
type Path[N core.Node] struct {
	Nodes  []N
	Weight float64
	Valid  bool
}

// Options configures a Search.
//
// Mode     – weight mode passed to Weight.Value. Default 0.
// OnSettle – called once per finalized node with its final cost.
type Options struct {
	Mode     int
	OnSettle func(id core.NodeID, weight float64)
}

// Option represents a functional option for configuring a Search.
type Option func(*Options)

// DefaultOptions returns Options with mode 0 and no hook.
func DefaultOptions() Options {
	return Options{Mode: 0, OnSettle: nil}
}

// WithMode selects the weight mode. Panics on a negative mode.
func WithMode(mode int) Option {
	if mode < 0 {
		panic("dijkstra: WithMode(negative)")
	}
	return func(o *Options) { o.Mode = mode }
}

// WithOnSettle registers a hook run when a node's cost becomes final.
// A nil fn is ignored.
func WithOnSettle(fn func(id core.NodeID, weight float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

func validBound(v float64) bool { return v >= 0 && !math.IsNaN(v) }

// validScale is validBound restricted to finite values.
func validScale(v float64) bool { return v >= 0 && !math.IsInf(v, 1) && !math.IsNaN(v) }
