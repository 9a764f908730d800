package batch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geograph/batch"
	"github.com/katalvlaran/geograph/dijkstra"
	"github.com/katalvlaran/geograph/internal/fixture"
)

func allPairs(sites []fixture.Site) []batch.Query[fixture.Site] {
	var qs []batch.Query[fixture.Site]
	for _, a := range sites {
		for _, b := range sites {
			qs = append(qs, batch.Query[fixture.Site]{From: a, To: b})
		}
	}
	return qs
}

func TestShortestPaths_MatchesSequential(t *testing.T) {
	g, err := fixture.Five()
	require.NoError(t, err)
	qs := allPairs(fixture.FiveSites)

	for _, tc := range []struct {
		name string
		opts []batch.Option
	}{
		{"dijkstra", []batch.Option{batch.WithWorkers(3)}},
		{"astar", []batch.Option{batch.WithWorkers(2), batch.WithAStar(1, 1)}},
		{"serial", []batch.Option{batch.WithWorkers(1)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := batch.ShortestPaths(context.Background(), g, qs, tc.opts...)
			require.NoError(t, err)
			require.Len(t, res, len(qs))

			for i, q := range qs {
				s, err := dijkstra.NewDijkstra(g, q.From, q.To)
				require.NoError(t, err)
				require.NoError(t, s.Execute())
				want := s.Result()

				assert.Equal(t, q, res[i].Query)
				assert.Equal(t, want.Valid, res[i].Path.Valid, "%s→%s", q.From, q.To)
				assert.Equal(t, want.Weight, res[i].Path.Weight, "%s→%s", q.From, q.To)
				assert.Positive(t, res[i].Settled)
			}
		})
	}
}

func TestShortestPaths_Errors(t *testing.T) {
	g, err := fixture.Five()
	require.NoError(t, err)

	_, err = batch.ShortestPaths[fixture.Site](context.Background(), nil, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	qs := allPairs(fixture.FiveSites)
	qs = append(qs, batch.Query[fixture.Site]{From: fixture.FiveSites[0], To: fixture.Site{Name: "ghost"}})
	_, err = batch.ShortestPaths(context.Background(), g, qs)
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
	assert.Contains(t, err.Error(), "query 25")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = batch.ShortestPaths(ctx, g, allPairs(fixture.FiveSites))
	assert.ErrorIs(t, err, context.Canceled)

	res, err := batch.ShortestPaths(context.Background(), g, nil)
	require.NoError(t, err)
	assert.Empty(t, res)

	assert.Panics(t, func() { batch.WithWorkers(0) })
	assert.Panics(t, func() { batch.WithAStar(-1, 1) })
}
