package coverage

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/geograph/core"
)

// Search is one single-use coverage traversal.
type Search[N core.Node] struct {
	g      *core.Graph[N]
	origin core.NodeID
	max    float64
	mode   int

	executed bool
	records  []*Record[N] // by NodeID, nil until reached
}

// New returns a coverage traversal from origin bounded by maxDistance in
// the given weight mode.
func New[N core.Node](g *core.Graph[N], origin N, maxDistance float64, mode int) (*Search[N], error) {
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
	return &Search[N]{g: g, origin: src, max: maxDistance, mode: mode}, nil
}

// Execute runs the traversal to completion.
func (s *Search[N]) Execute() error {
	if s.executed {
		return ErrAlreadyExecuted
	}
	s.executed = true

	s.records = make([]*Record[N], s.g.Len())
	root := &Record[N]{Node: s.g.Node(s.origin), id: s.origin}
	s.records[s.origin] = root
	return s.traverse(root)
}

// traverse relaxes every outgoing arc of r, creating or re-parenting
// records and recursing into those still under the bound.
func (s *Search[N]) traverse(r *Record[N]) error {
	for _, arc := range s.g.Arcs(r.id) {
		delta := arc.Weight.Value(s.mode)
		if delta < 0 || math.IsNaN(delta) {
			return fmt.Errorf("%w: %v→%v weight=%g", ErrNegativeWeight,
				r.Node, s.g.Node(arc.To), delta)
		}
		if math.IsInf(delta, 1) {
			continue
		}
		cand := r.Weight + delta

		next := s.records[arc.To]
		switch {
		case next == nil:
			next = &Record[N]{Node: s.g.Node(arc.To), id: arc.To, Weight: cand}
			s.records[arc.To] = next
		case cand < next.Weight:
			next.pred.detach(next)
			next.Weight = cand
		default:
			continue
		}
		r.attach(next)

		if cand < s.max {
			if err := s.traverse(next); err != nil {
				return err
			}
		}
	}
	return nil
}

// Root returns the origin's record, nil before Execute.
func (s *Search[N]) Root() *Record[N] {
	if s.records == nil {
		return nil
	}
	return s.records[s.origin]
}

// Result returns every leaf record, cheapest first, ties by node id. The
// origin is a leaf when nothing is reachable from it.
func (s *Search[N]) Result() []*Record[N] {
	var leaves []*Record[N]
	for _, r := range s.records {
		if r != nil && r.IsLeaf() {
			leaves = append(leaves, r)
		}
	}
	slices.SortFunc(leaves, func(a, b *Record[N]) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	return leaves
}

// Within returns the leaves whose cost is at most the bound.
func (s *Search[N]) Within() []*Record[N] {
	leaves := s.Result()
	i, _ := slices.BinarySearchFunc(leaves, s.max, func(r *Record[N], bound float64) int {
		if r.Weight <= bound {
			return -1
		}
		return 1
	})
	return leaves[:i]
}

// Reached maps every reached node to its final cost, including frontier
// nodes past the bound.
func (s *Search[N]) Reached() map[N]float64 {
	out := make(map[N]float64)
	for _, r := range s.records {
		if r != nil {
			out[r.Node] = r.Weight
		}
	}
	return out
}

// Record returns the record of n, if reached.
func (s *Search[N]) Record(n N) (*Record[N], bool) {
	id, ok := s.g.Lookup(n)
	if !ok || s.records == nil || s.records[id] == nil {
		return nil, false
	}
	return s.records[id], true
}
