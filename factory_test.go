package geograph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geograph"
	"github.com/katalvlaran/geograph/bfs"
	"github.com/katalvlaran/geograph/dijkstra"
	"github.com/katalvlaran/geograph/internal/fixture"
)

func TestFactory_ShortestPaths(t *testing.T) {
	g, err := fixture.Five()
	require.NoError(t, err)
	from, to := fixture.FiveSites[0], fixture.FiveSites[3]
	cfg := geograph.DefaultConfig()

	for name, build := range map[string]func() (geograph.Algorithm[dijkstra.Path[fixture.Site]], error){
		"dijkstra": func() (geograph.Algorithm[dijkstra.Path[fixture.Site]], error) {
			return geograph.NewDijkstra(g, from, to, cfg)
		},
		"astar": func() (geograph.Algorithm[dijkstra.Path[fixture.Site]], error) {
			return geograph.NewAStar(g, from, to, cfg)
		},
	} {
		t.Run(name, func(t *testing.T) {
			alg, err := build()
			require.NoError(t, err)
			require.NoError(t, alg.Execute())
			p := alg.Result()
			require.True(t, p.Valid)
			assert.Equal(t, 9.0, p.Weight)
			assert.Len(t, p.Nodes, 4)
		})
	}
}

func TestFactory_Bounded(t *testing.T) {
	g, err := fixture.Lattice(5)
	require.NoError(t, err)
	origin := fixture.LatticeSite(0, 0)
	cfg := geograph.DefaultConfig()
	cfg.MaxDistance = 2

	within, err := geograph.NewWithinDistance(g, origin, cfg)
	require.NoError(t, err)
	require.NoError(t, within.Execute())

	walk, err := geograph.NewBoundedBFS(g, origin, cfg)
	require.NoError(t, err)
	require.NoError(t, walk.Execute())

	// on unit weights FIFO discovery agrees with Dijkstra
	assert.Equal(t, within.Result(), walk.Result())
	assert.Len(t, walk.Result(), 6)

	cov, err := geograph.NewCoverage(g, origin, cfg)
	require.NoError(t, err)
	require.NoError(t, cov.Execute())
	for _, r := range cov.Result() {
		assert.Equal(t, 2.0, r.Weight, "leaf %s", r.Node)
	}
}

func TestFactory_Errors(t *testing.T) {
	g, err := fixture.Five()
	require.NoError(t, err)
	n0, n3 := fixture.FiveSites[0], fixture.FiveSites[3]

	bad := geograph.DefaultConfig()
	bad.Mode = -1
	_, err = geograph.NewDijkstra(g, n0, n3, bad)
	assert.ErrorIs(t, err, geograph.ErrBadConfig)
	_, err = geograph.NewCoverage(g, n0, bad)
	assert.ErrorIs(t, err, geograph.ErrBadConfig)

	cfg := geograph.DefaultConfig()
	cfg.Factor = -1
	alg, err := geograph.NewAStar(g, n0, n3, cfg)
	assert.ErrorIs(t, err, dijkstra.ErrBadHeuristic)
	assert.Nil(t, alg)

	cfg = geograph.DefaultConfig()
	cfg.MaxDistance = -1
	_, err = geograph.NewBoundedBFS(g, n0, cfg)
	assert.ErrorIs(t, err, bfs.ErrBadMaxDistance)

	_, err = geograph.NewWithinDistance(g, fixture.Site{Name: "ghost"}, geograph.DefaultConfig())
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}
