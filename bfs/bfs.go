package bfs

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/geograph/core"
)

// queueItem is one grey node awaiting finalization.
type queueItem struct {
	id   core.NodeID
	dist float64
}

// Walker is one single-use bounded BFS run.
type Walker[N core.Node] struct {
	g      *core.Graph[N]
	origin core.NodeID
	max    float64
	mode   int
	opts   Options

	executed bool
	queue    []queueItem
	grey     *roaring.Bitmap
	black    *roaring.Bitmap
	dist     []float64
	parent   []core.NodeID
	order    []core.NodeID
}

// New returns a traversal from origin that expands nodes up to maxDistance
// in the given weight mode.
func New[N core.Node](g *core.Graph[N], origin N, maxDistance float64, mode int, opts ...Option) (*Walker[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if maxDistance < 0 || math.IsNaN(maxDistance) {
		return nil, fmt.Errorf("%w: %g", ErrBadMaxDistance, maxDistance)
	}
	if mode < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMode, mode)
	}
	src, ok := g.Lookup(origin)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, origin)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Walker[N]{
		g:      g,
		origin: src,
		max:    maxDistance,
		mode:   mode,
		opts:   o,
	}, nil
}

// Execute runs the traversal to completion.
func (w *Walker[N]) Execute() error {
	if w.executed {
		return ErrAlreadyExecuted
	}
	w.executed = true

	n := w.g.Len()
	w.queue = make([]queueItem, 0, n)
	w.grey = roaring.New()
	w.black = roaring.New()
	w.dist = make([]float64, n)
	w.parent = make([]core.NodeID, n)
	for i := range w.parent {
		w.dist[i] = math.Inf(1)
		w.parent[i] = core.NoNode
	}
	w.order = make([]core.NodeID, 0, n)

	w.enqueue(w.origin, 0, core.NoNode)
	return w.loop()
}

// enqueue turns id grey at distance d.
func (w *Walker[N]) enqueue(id core.NodeID, d float64, parent core.NodeID) {
	w.grey.Add(uint32(id))
	w.dist[id] = d
	w.parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, dist: d})
}

// loop finalizes queued nodes in FIFO order until the queue is empty.
func (w *Walker[N]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		if item.dist > w.max {
			continue
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit turns the node black.
func (w *Walker[N]) visit(item queueItem) error {
	w.grey.Remove(uint32(item.id))
	w.black.Add(uint32(item.id))
	w.order = append(w.order, item.id)
	if err := w.opts.OnVisit(item.id, item.dist); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", w.g.Node(item.id), err)
	}
	return nil
}

// enqueueNeighbors queues every white neighbor of item.
func (w *Walker[N]) enqueueNeighbors(item queueItem) error {
	for _, arc := range w.g.Arcs(item.id) {
		weight := arc.Weight.Value(w.mode)
		if weight < 0 || math.IsNaN(weight) {
			return fmt.Errorf("%w: %v→%v weight=%g", ErrNegativeWeight,
				w.g.Node(item.id), w.g.Node(arc.To), weight)
		}
		if math.IsInf(weight, 1) {
			continue
		}
		v := uint32(arc.To)
		if w.grey.Contains(v) || w.black.Contains(v) {
			continue
		}
		w.enqueue(arc.To, item.dist+weight, item.id)
	}
	return nil
}

// Result maps every finalized node within the bound to its discovered
// distance. It is empty before Execute.
func (w *Walker[N]) Result() map[N]float64 {
	return w.collect(true)
}

// Finalized is Result plus the over-bound nodes that were finalized
// without expansion.
func (w *Walker[N]) Finalized() map[N]float64 {
	return w.collect(false)
}

func (w *Walker[N]) collect(bounded bool) map[N]float64 {
	out := make(map[N]float64, len(w.order))
	for _, id := range w.order {
		if bounded && w.dist[id] > w.max {
			continue
		}
		out[w.g.Node(id)] = w.dist[id]
	}
	return out
}

// Order returns the finalized nodes in finalization order.
func (w *Walker[N]) Order() []N {
	out := make([]N, len(w.order))
	for i, id := range w.order {
		out[i] = w.g.Node(id)
	}
	return out
}

// PathTo returns the discovery path from the origin to n.
func (w *Walker[N]) PathTo(n N) ([]N, error) {
	id, ok := w.g.Lookup(n)
	if !ok || w.black == nil || !w.black.Contains(uint32(id)) {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, n)
	}
	var path []N
	for cur := id; cur != core.NoNode; cur = w.parent[cur] {
		path = append(path, w.g.Node(cur))
	}
	slices.Reverse(path)
	return path, nil
}
