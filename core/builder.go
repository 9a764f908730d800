// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Two-phase graph construction: AddEdge accumulates nodes and arcs,
//       Build freezes the spatial grid and hands out an immutable Graph.
// Determinism:
//   - NodeIDs are assigned in first-mention order.
//   - Arcs keep insertion order per node; a replaced arc keeps its slot.

package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/geograph/spatial"
)

// BuilderOption customizes a Builder.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	compareMode int
	capacity    int
	logger      *log.Logger
}

func defaultBuilderConfig() builderConfig {
	return builderConfig{
		compareMode: 0,
		capacity:    0,
		logger:      log.New(io.Discard),
	}
}

// WithCompareMode selects the weight mode used to decide which of two
// edges between the same ordered pair is kept. Panics on a negative mode.
func WithCompareMode(mode int) BuilderOption {
	if mode < 0 {
		panic("core: WithCompareMode(negative)")
	}
	return func(c *builderConfig) { c.compareMode = mode }
}

// WithCapacity preallocates room for about n nodes.
func WithCapacity(n int) BuilderOption {
	return func(c *builderConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithLogger attaches a logger; Build reports graph statistics at debug
// level. Panics on nil.
func WithLogger(l *log.Logger) BuilderOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}

// arcKey identifies an ordered node pair during construction.
type arcKey struct{ from, to NodeID }

// Builder accumulates edges into a graph.
type Builder[N Node] struct {
	cfg    builderConfig
	bounds spatial.Rect
	grid   *spatial.GridBuilder[entry[N]]
	nodes  []vertex[N]
	ids    map[N]NodeID
	arcs   map[arcKey]int // position of the arc inside nodes[from].out
	edges  int
	frozen bool
}

// NewBuilder returns a builder whose nodes must lie inside bounds. The
// resolution is the grid cell edge length (see spatial.NewGridBuilder).
func NewBuilder[N Node](bounds spatial.Rect, resolution int, opts ...BuilderOption) (*Builder[N], error) {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	grid, err := spatial.NewGridBuilder[entry[N]](bounds, resolution)
	if err != nil {
		return nil, fmt.Errorf("core: NewBuilder: %w", err)
	}

	return &Builder[N]{
		cfg:    cfg,
		bounds: bounds,
		grid:   grid,
		nodes:  make([]vertex[N], 0, cfg.capacity),
		ids:    make(map[N]NodeID, cfg.capacity),
		arcs:   make(map[arcKey]int, cfg.capacity),
	}, nil
}

// AddEdge records the edge from → to. Unknown endpoints are registered
// first. Self-edges are ignored. For an ordered pair that already has an
// edge, the one with the lower weight in the compare mode is kept; ties
// keep the existing edge. A failed call leaves the builder unchanged.
//
// Complexity: O(1) amortized.
func (b *Builder[N]) AddEdge(from, to N, label string, w Weight) error {
	if b.frozen {
		return ErrBuilt
	}
	if w == nil {
		return ErrNilWeight
	}
	if err := b.admit(from); err != nil {
		return err
	}
	if err := b.admit(to); err != nil {
		return err
	}

	u, err := b.register(from)
	if err != nil {
		return err
	}
	v, err := b.register(to)
	if err != nil {
		return err
	}
	if u == v {
		return nil
	}

	key := arcKey{u, v}
	if pos, ok := b.arcs[key]; ok {
		cur := &b.nodes[u].out[pos]
		if w.Value(b.cfg.compareMode) < cur.Weight.Value(b.cfg.compareMode) {
			cur.Weight = w
			cur.Label = label
		}
		return nil
	}

	b.arcs[key] = len(b.nodes[u].out)
	b.nodes[u].out = append(b.nodes[u].out, Arc{To: v, Weight: w, Label: label})
	b.edges++

	return nil
}

// AddBidirectional adds a → b and b → a with the same label and weight.
func (b *Builder[N]) AddBidirectional(a, c N, label string, w Weight) error {
	if err := b.AddEdge(a, c, label, w); err != nil {
		return err
	}
	return b.AddEdge(c, a, label, w)
}

// admit rejects an endpoint that is neither known nor inside the bounds.
func (b *Builder[N]) admit(n N) error {
	if _, ok := b.ids[n]; ok || b.bounds.Contains(n) {
		return nil
	}
	return fmt.Errorf("core: AddEdge: %w: (%g, %g) not in %+v", spatial.ErrOutOfBounds, n.X(), n.Y(), b.bounds)
}

// register returns the NodeID of n, creating it on first mention.
func (b *Builder[N]) register(n N) (NodeID, error) {
	if id, ok := b.ids[n]; ok {
		return id, nil
	}
	id := NodeID(len(b.nodes))
	if err := b.grid.Insert(entry[N]{id: id, value: n}); err != nil {
		return NoNode, fmt.Errorf("core: AddEdge: %w", err)
	}
	b.nodes = append(b.nodes, vertex[N]{value: n})
	b.ids[n] = id
	return id, nil
}

// Build freezes the builder and returns the graph. Construction-only maps
// are released.
func (b *Builder[N]) Build() (*Graph[N], error) {
	if b.frozen {
		return nil, ErrBuilt
	}
	if b.edges == 0 {
		return nil, ErrEmptyGraph
	}
	b.frozen = true

	g := &Graph[N]{
		nodes: b.nodes,
		grid:  b.grid.Build(),
		edges: b.edges,
	}
	b.nodes, b.ids, b.arcs = nil, nil, nil

	cols, rows := g.grid.Dims()
	b.cfg.logger.Debug("graph built", "nodes", len(g.nodes), "edges", g.edges, "cols", cols, "rows", rows)

	return g, nil
}
