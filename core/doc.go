// Package core provides the spatial graph: point-like nodes with real-valued,
// multi-modal edge weights, indexed on a uniform grid so nearest-node lookups
// only touch nearby cells.
//
// A Graph is produced by a Builder in two phases:
//
//	b, _ := core.NewBuilder[Stop](bounds, 100)
//	b.AddEdge(a, c, "bus 12", core.Scalar(4.5))   // nodes registered on first mention
//	b.AddEdge(c, a, "bus 12", core.Modal{4.5, 9}) // per-mode weights
//	g, err := b.Build()                           // freeze; ErrEmptyGraph if no edges
//
// Construction rules:
//
//   - Nodes are created lazily on first mention and inserted into the grid.
//   - Self-edges (from == to) are ignored silently.
//   - At most one edge per ordered (from, to) pair: a later edge with a lower
//     weight (in the compare mode, default 0) replaces the stored one, any
//     other later edge is discarded. Both calls succeed.
//
// Storage:
//
//   - Nodes live in an arena addressed by NodeID; outgoing edges (Arc) store
//     the target's NodeID rather than a pointer, so adjacency is a flat,
//     acyclic structure.
//   - The identity map used during construction is dropped by Build; identity
//     lookups on a built graph go through the grid (ObjectsAt + equality).
//
// Concurrency:
//
//   - A Builder is single-goroutine.
//   - A built Graph is immutable; any number of goroutines may query it and
//     run searches over it concurrently. Build is the synchronization point.
//
// Errors:
//
//	ErrEmptyGraph   Build on a builder that received no edges.
//	ErrNilWeight    AddEdge with a nil Weight.
//	ErrBuilt        AddEdge or Build after Build.
//	spatial.ErrOutOfBounds (wrapped)  a node outside the builder's bounds.
package core
