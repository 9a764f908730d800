// Package bfs provides a distance-bounded breadth-first traversal over a
// core.Graph, reporting the cumulative edge weight at which each node was
// first discovered.
//
// What
//
//   - The frontier is a plain FIFO queue, not priority-ordered.
//   - Every node moves white → grey (queued) → black (finalized) exactly
//     once; grey and black nodes are never queued again.
//   - A dequeued node whose distance exceeds maxDistance is finalized
//     without expanding its neighbors.
//   - Result maps every finalized node within maxDistance to its distance;
//     Finalized also includes the over-bound frontier.
//   - Hooks: OnEnqueue (on grey), OnVisit (on black; may abort with an error).
//
// Limitation
//
//	A node's distance is the one along the path by which it was first
//	queued. That equals the shortest distance only when every edge in the
//	traversed mode costs the same (unit or uniform weights). On arbitrary
//	weights use dijkstra.NewWithinDistance instead.
//
// Weights
//
//	+Inf arcs are impassable. Negative or NaN weights abort Execute with
//	ErrNegativeWeight.
//
// Complexity (V = nodes, E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	w, err := bfs.New(g, origin, 2, 0)
//	if err != nil {
//	    // ErrNilGraph, ErrNodeNotFound, ErrBadMaxDistance, ErrBadMode
//	}
//	if err := w.Execute(); err != nil {
//	    // ErrNegativeWeight, ErrAlreadyExecuted, or an OnVisit error
//	}
//	for n, d := range w.Result() {
//	    fmt.Println(n, d)
//	}
package bfs
