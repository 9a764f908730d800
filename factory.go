package geograph

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/geograph/bfs"
	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/coverage"
	"github.com/katalvlaran/geograph/dijkstra"
)

// ErrBadConfig indicates a Config field outside its domain.
var ErrBadConfig = errors.New("geograph: invalid config")

// Algorithm is a constructed, not-yet-run search. Execute runs it once;
// Result reads the outcome afterwards.
type Algorithm[R any] interface {
	Execute() error
	Result() R
}

// Config carries the knobs shared by every factory constructor.
//
// Mode            – weight mode read from each edge. Default 0.
// MaxDistance     – bound for BFS, coverage and within-distance searches. Default +Inf.
// HeuristicWeight – A* heuristic multiplier. Default 1.
// Factor          – converts straight-line distance into weight units for A*. Default 1.
type Config struct {
	Mode            int
	MaxDistance     float64
	HeuristicWeight float64
	Factor          float64
}

// DefaultConfig returns the defaults listed on Config.
func DefaultConfig() Config {
	return Config{
		Mode:            0,
		MaxDistance:     math.Inf(1),
		HeuristicWeight: 1,
		Factor:          1,
	}
}

func (c Config) validate() error {
	if c.Mode < 0 {
		return fmt.Errorf("%w: mode %d", ErrBadConfig, c.Mode)
	}
	return nil
}

// NewDijkstra returns a shortest-path search from origin to dest.
func NewDijkstra[N core.Node](g *core.Graph[N], origin, dest N, cfg Config) (Algorithm[dijkstra.Path[N]], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s, err := dijkstra.NewDijkstra(g, origin, dest, dijkstra.WithMode(cfg.Mode))
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewAStar returns an A* search from origin to dest steered by the
// straight-line distance to dest, scaled by cfg.HeuristicWeight·cfg.Factor.
func NewAStar[N core.Node](g *core.Graph[N], origin, dest N, cfg Config) (Algorithm[dijkstra.Path[N]], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s, err := dijkstra.NewAStar(g, origin, dest, cfg.HeuristicWeight, cfg.Factor, dijkstra.WithMode(cfg.Mode))
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithinDistance returns a bounded Dijkstra whose result maps every
// node within cfg.MaxDistance of origin to its shortest cost.
func NewWithinDistance[N core.Node](g *core.Graph[N], origin N, cfg Config) (Algorithm[map[N]float64], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s, err := dijkstra.NewWithinDistance(g, origin, cfg.MaxDistance, dijkstra.WithMode(cfg.Mode))
	if err != nil {
		return nil, err
	}
	return distances[N]{s}, nil
}

// NewBoundedBFS returns a FIFO traversal bounded by cfg.MaxDistance. Its
// distances are exact only on uniform weights; see package bfs.
func NewBoundedBFS[N core.Node](g *core.Graph[N], origin N, cfg Config) (Algorithm[map[N]float64], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	w, err := bfs.New(g, origin, cfg.MaxDistance, cfg.Mode)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// NewCoverage returns an isochrone traversal bounded by cfg.MaxDistance.
func NewCoverage[N core.Node](g *core.Graph[N], origin N, cfg Config) (Algorithm[[]*coverage.Record[N]], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s, err := coverage.New(g, origin, cfg.MaxDistance, cfg.Mode)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// distances reports a bounded search's settled costs as its result.
type distances[N core.Node] struct {
	*dijkstra.Search[N]
}

func (d distances[N]) Result() map[N]float64 { return d.Distances() }
