package dijkstra

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/pairing"
	"github.com/katalvlaran/geograph/spatial"
)

// Search is one single-use shortest-path run. Construct it, call Execute
// once, then read Result or Distances.
type Search[N core.Node] struct {
	g       *core.Graph[N]
	origin  core.NodeID
	target  core.NodeID // node whose path Result reports, NoNode if none
	relax   Relaxer
	done    Terminator
	options Options

	// stopSettles marks the node the terminator fired on as settled.
	stopSettles bool

	executed bool
	records  []Record
	closed   *roaring.Bitmap
	pq       *pairing.Index[core.NodeID]
	stopped  core.NodeID
}

// New returns a search from origin driven by the given relaxer and
// terminator. A nil terminator runs until the frontier is exhausted.
// Result reports no path for searches built with New; use Distances or
// PathTo.
func New[N core.Node](g *core.Graph[N], origin N, relax Relaxer, done Terminator, opts ...Option) (*Search[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	src, ok := g.Lookup(origin)
	if !ok {
		return nil, fmt.Errorf("%w: origin %v", ErrNodeNotFound, origin)
	}
	if relax == nil {
		relax = Additive()
	}
	if done == nil {
		done = func(*Record) bool { return false }
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Search[N]{
		g:       g,
		origin:  src,
		target:  core.NoNode,
		relax:   relax,
		done:    done,
		options: cfg,
		stopped: core.NoNode,
	}, nil
}

// NewDijkstra returns a plain Dijkstra search from origin to dest.
func NewDijkstra[N core.Node](g *core.Graph[N], origin, dest N, opts ...Option) (*Search[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	dst, ok := g.Lookup(dest)
	if !ok {
		return nil, fmt.Errorf("%w: destination %v", ErrNodeNotFound, dest)
	}
	s, err := New(g, origin, Additive(), AtNode(dst), opts...)
	if err != nil {
		return nil, err
	}
	s.target = dst
	s.stopSettles = true
	return s, nil
}

// NewAStar returns an A* search from origin to dest. Nodes are queued at
// cost + heuristicWeight·factor·distance(node, dest), where distance is the
// straight-line distance and factor converts it into weight units.
func NewAStar[N core.Node](g *core.Graph[N], origin, dest N, heuristicWeight, factor float64, opts ...Option) (*Search[N], error) {
	if !validScale(heuristicWeight) || !validScale(factor) {
		return nil, fmt.Errorf("%w: weight=%g factor=%g", ErrBadHeuristic, heuristicWeight, factor)
	}
	s, err := NewDijkstra(g, origin, dest, opts...)
	if err != nil {
		return nil, err
	}
	goal := g.Node(s.target)
	s.relax = Heuristic(func(id core.NodeID) float64 {
		return spatial.Distance(g.Node(id), goal)
	}, heuristicWeight, factor)
	return s, nil
}

// NewWithinDistance returns a search that settles every node whose cost
// from origin is at most maxDistance. Read the outcome with Distances.
func NewWithinDistance[N core.Node](g *core.Graph[N], origin N, maxDistance float64, opts ...Option) (*Search[N], error) {
	if !validBound(maxDistance) {
		return nil, fmt.Errorf("%w: %g", ErrBadMaxDistance, maxDistance)
	}
	return New(g, origin, Additive(), Beyond(maxDistance), opts...)
}

// Execute runs the search to completion.
func (s *Search[N]) Execute() error {
	if s.executed {
		return ErrAlreadyExecuted
	}
	s.executed = true

	if err := s.init(); err != nil {
		return err
	}
	return s.process()
}

// init allocates the per-run state and queues the origin at cost 0.
func (s *Search[N]) init() error {
	n := s.g.Len()
	s.records = make([]Record, n)
	for i := range s.records {
		s.records[i] = Record{Node: core.NodeID(i), Weight: math.Inf(1), Pred: core.NoNode}
	}
	s.closed = roaring.New()
	s.pq = pairing.NewIndex[core.NodeID](n)

	s.records[s.origin].Weight = 0
	return s.pq.Add(s.origin, 0)
}

// process is the main loop: extract, test the terminator, close, expand.
func (s *Search[N]) process() error {
	for !s.pq.IsEmpty() {
		it, err := s.pq.ExtractMin()
		if err != nil {
			return err
		}
		u := &s.records[it.Key]

		if s.done(u) {
			s.stopped = u.Node
			if s.stopSettles {
				s.settle(u)
			}
			return nil
		}
		s.settle(u)

		if err := s.expand(u); err != nil {
			return err
		}
	}
	return nil
}

func (s *Search[N]) settle(r *Record) {
	s.closed.Add(uint32(r.Node))
	if s.options.OnSettle != nil {
		s.options.OnSettle(r.Node, r.Weight)
	}
}

// expand relaxes every outgoing arc of u.
func (s *Search[N]) expand(u *Record) error {
	mode := s.options.Mode
	for _, arc := range s.g.Arcs(u.Node) {
		if s.closed.Contains(uint32(arc.To)) {
			continue
		}
		w := arc.Weight.Value(mode)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: %v→%v weight=%g", ErrNegativeWeight,
				s.g.Node(u.Node), s.g.Node(arc.To), w)
		}
		if math.IsInf(w, 1) {
			continue
		}

		if !s.pq.Contains(arc.To) {
			if err := s.pq.Add(arc.To, math.Inf(1)); err != nil {
				return err
			}
		}
		priority, updated := s.relax.Relax(u, &s.records[arc.To], arc, mode)
		if !updated {
			continue
		}
		if _, err := s.pq.Update(arc.To, priority); err != nil {
			return err
		}
	}
	return nil
}

// Result returns the path to the destination. It is invalid when the
// destination was not reached, when Execute has not run, and for searches
// without a destination.
func (s *Search[N]) Result() Path[N] {
	if s.target == core.NoNode || s.stopped != s.target {
		return Path[N]{}
	}
	return s.pathTo(s.target)
}

// PathTo returns the settled path to n.
func (s *Search[N]) PathTo(n N) Path[N] {
	if s.closed == nil {
		return Path[N]{}
	}
	id, ok := s.g.Lookup(n)
	if !ok || !s.closed.Contains(uint32(id)) {
		return Path[N]{}
	}
	return s.pathTo(id)
}

// pathTo walks predecessor links back to the origin.
func (s *Search[N]) pathTo(id core.NodeID) Path[N] {
	var nodes []N
	for cur := id; cur != core.NoNode; cur = s.records[cur].Pred {
		nodes = append(nodes, s.g.Node(cur))
	}
	slices.Reverse(nodes)
	return Path[N]{Nodes: nodes, Weight: s.records[id].Weight, Valid: true}
}

// Distances returns the final cost of every settled node.
func (s *Search[N]) Distances() map[N]float64 {
	if s.closed == nil {
		return map[N]float64{}
	}
	out := make(map[N]float64, s.closed.GetCardinality())
	it := s.closed.Iterator()
	for it.HasNext() {
		id := core.NodeID(it.Next())
		out[s.g.Node(id)] = s.records[id].Weight
	}
	return out
}

// Settled returns the number of finalized nodes.
func (s *Search[N]) Settled() int {
	if s.closed == nil {
		return 0
	}
	return int(s.closed.GetCardinality())
}
