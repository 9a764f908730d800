package dijkstra

import (
	"github.com/katalvlaran/geograph/core"
)

// Relaxer decides whether reaching to through from along arc improves to's
// cost. When it does, it updates to.Weight and to.Pred and returns the
// priority to queue to at.
type Relaxer interface {
	Relax(from, to *Record, arc core.Arc, mode int) (priority float64, updated bool)
}

// RelaxFunc adapts a function to the Relaxer interface.
type RelaxFunc func(from, to *Record, arc core.Arc, mode int) (float64, bool)

// Relax calls f.
func (f RelaxFunc) Relax(from, to *Record, arc core.Arc, mode int) (float64, bool) {
	return f(from, to, arc, mode)
}

// Terminator reports whether the search stops at the extracted record.
type Terminator func(r *Record) bool

// AtNode stops the search when id is extracted.
func AtNode(id core.NodeID) Terminator {
	return func(r *Record) bool { return r.Node == id }
}

// Beyond stops the search at the first extracted record costlier than max.
func Beyond(max float64) Terminator {
	return func(r *Record) bool { return r.Weight > max }
}

// additive is the plain cost relaxer.
type additive struct{}

// Additive returns the default relaxer: cost(u) + w(u,v), strict improvement only.
func Additive() Relaxer { return additive{} }

func (additive) Relax(from, to *Record, arc core.Arc, mode int) (float64, bool) {
	cand := from.Weight + arc.Weight.Value(mode)
	if cand >= to.Weight {
		return 0, false
	}
	to.Weight = cand
	to.Pred = from.Node
	return cand, true
}

// heuristic is the A* relaxer.
type heuristic struct {
	estimate func(core.NodeID) float64
	scale    float64
}

// Heuristic returns an A* relaxer. Costs are updated exactly as Additive
// does; the returned priority is inflated by weight·factor·estimate(v).
func Heuristic(estimate func(core.NodeID) float64, weight, factor float64) Relaxer {
	return heuristic{estimate: estimate, scale: weight * factor}
}

func (h heuristic) Relax(from, to *Record, arc core.Arc, mode int) (float64, bool) {
	cand := from.Weight + arc.Weight.Value(mode)
	if cand >= to.Weight {
		return 0, false
	}
	to.Weight = cand
	to.Pred = from.Node
	return cand + h.scale*h.estimate(to.Node), true
}
