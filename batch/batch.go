// Package batch runs many independent shortest-path searches over one
// built graph concurrently. A core.Graph is immutable after Build, so the
// searches share it without locks; each search keeps its own state.
package batch

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/dijkstra"
)

// Query is one origin/destination pair.
type Query[N core.Node] struct {
	From N
	To   N
}

// Result is the outcome of one Query. Settled counts the nodes the search
// finalized.
type Result[N core.Node] struct {
	Query   Query[N]
	Path    dijkstra.Path[N]
	Settled int
}

// Options configures a batch.
//
// Mode            – weight mode of every search. Default 0.
// Workers         – maximum searches in flight. Default GOMAXPROCS.
// AStar           – use A* instead of Dijkstra.
// HeuristicWeight – A* heuristic multiplier.
// Factor          – A* distance-to-weight factor.
type Options struct {
	Mode            int
	Workers         int
	AStar           bool
	HeuristicWeight float64
	Factor          float64
}

// Option represents a functional option for configuring a batch.
type Option func(*Options)

// DefaultOptions returns plain Dijkstra in mode 0 on GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Mode:            0,
		Workers:         runtime.GOMAXPROCS(0),
		AStar:           false,
		HeuristicWeight: 1,
		Factor:          1,
	}
}

// WithMode selects the weight mode. Panics on a negative mode.
func WithMode(mode int) Option {
	if mode < 0 {
		panic("batch: WithMode(negative)")
	}
	return func(o *Options) { o.Mode = mode }
}

// WithWorkers caps concurrent searches. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithAStar switches every search to A* with the given heuristic weight
// and factor. Panics on negative or NaN values.
func WithAStar(heuristicWeight, factor float64) Option {
	if heuristicWeight < 0 || factor < 0 || math.IsNaN(heuristicWeight) || math.IsNaN(factor) {
		panic("batch: WithAStar(negative)")
	}
	return func(o *Options) {
		o.AStar = true
		o.HeuristicWeight = heuristicWeight
		o.Factor = factor
	}
}

// ShortestPaths answers every query and returns the results in query
// order. The first failing search cancels the rest; its error is returned
// with the query index. Cancelling ctx stops searches not yet started.
func ShortestPaths[N core.Node](ctx context.Context, g *core.Graph[N], queries []Query[N], opts ...Option) ([]Result[N], error) {
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]Result[N], len(queries))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)

	for i, q := range queries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := newSearch(g, q, o)
			if err != nil {
				return fmt.Errorf("batch: query %d: %w", i, err)
			}
			if err := s.Execute(); err != nil {
				return fmt.Errorf("batch: query %d: %w", i, err)
			}
			results[i] = Result[N]{Query: q, Path: s.Result(), Settled: s.Settled()}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func newSearch[N core.Node](g *core.Graph[N], q Query[N], o Options) (*dijkstra.Search[N], error) {
	if o.AStar {
		return dijkstra.NewAStar(g, q.From, q.To, o.HeuristicWeight, o.Factor, dijkstra.WithMode(o.Mode))
	}
	return dijkstra.NewDijkstra(g, q.From, q.To, dijkstra.WithMode(o.Mode))
}
