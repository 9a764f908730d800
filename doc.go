// Package geograph is an in-memory routing toolkit for spatial graphs:
// graphs whose nodes live in the plane and whose edges carry one cost per
// travel mode.
//
// What is in the box?
//
//	• Priority queues: arena pairing heap with decrease-key, keyed index
//	• Spatial index: uniform grid with k-nearest and exact-point lookup
//	• Graphs: lazy builder, immutable arena graph, multi-mode weights
//	• Shortest paths: Dijkstra, A*, distance-bounded Dijkstra
//	• Traversals: bounded FIFO BFS, depth-first coverage (isochrones)
//	• Batches: many independent searches over one graph in parallel
//
// Packages:
//
//	pairing/   - pairing heap + priority index
//	spatial/   - Point, Rect, grid builder and frozen grid
//	core/      - Builder, Graph, Weight (Scalar, Modal)
//	dijkstra/  - one search loop driven by a Relaxer and a Terminator
//	bfs/       - bounded breadth-first walker
//	coverage/  - isochrone traversal with re-parenting
//	batch/     - concurrent read-only searches
//
// This root package is the algorithm factory: each constructor takes the
// built graph, the origin (and destination where applicable) and an
// explicit Config, and returns a not-yet-run Algorithm.
//
//	cfg := geograph.DefaultConfig()
//	cfg.Mode = 1
//	alg, err := geograph.NewAStar(g, from, to, cfg)
//	if err != nil { ... }
//	if err := alg.Execute(); err != nil { ... }
//	path := alg.Result()
//
// The five-node graph used across the tests (0→1:10 0→2:5 1→2:2 1→3:1
// 2→1:3 2→3:9 2→4:2 3→4:4 4→0:7 4→3:6) routes n0 → n3 through n2 and n1
// at a total cost of 9.
package geograph
