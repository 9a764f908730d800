package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/internal/fixture"
	"github.com/katalvlaran/geograph/spatial"
)

func TestGraph_LookupRoundTrip(t *testing.T) {
	g, err := fixture.Five()
	require.NoError(t, err)
	require.Equal(t, 5, g.Len())
	require.Equal(t, 10, g.EdgeCount())

	for _, s := range fixture.FiveSites {
		id, ok := g.Lookup(s)
		require.True(t, ok, "site %s", s)
		assert.Equal(t, s, g.Node(id))

		at := g.ObjectsAt(s)
		require.Len(t, at, 1)
		assert.Equal(t, s, at[0])
	}

	// same place, different identity
	impostor := fixture.Site{Name: "other", PX: 0, PY: 0}
	assert.False(t, g.Contains(impostor))
	assert.Empty(t, g.ObjectsAt(spatial.Pt(7, 7)))
}

func TestGraph_Nearest(t *testing.T) {
	g, err := fixture.Five()
	require.NoError(t, err)

	got := g.Nearest(spatial.Pt(1.8, 0.1), 2, 1.5)
	require.Len(t, got, 2)
	assert.Equal(t, "n4", got[0].Name)
	assert.Equal(t, "n2", got[1].Name)

	ids := g.NearestIDs(spatial.Pt(1.8, 0.1), 1, 1.5)
	require.Len(t, ids, 1)
	assert.Equal(t, "n4", g.Node(ids[0]).Name)

	assert.Nil(t, g.Nearest(spatial.Pt(9, 9), 3, 1))
}

func TestGraph_Edges(t *testing.T) {
	g, err := fixture.Five()
	require.NoError(t, err)

	var targets []string
	for e := range g.Edges(fixture.FiveSites[2]) {
		assert.Equal(t, fixture.FiveSites[2], e.From)
		targets = append(targets, e.To.Name)
	}
	assert.Equal(t, []string{"n1", "n3", "n4"}, targets)

	n := 0
	for range g.Edges(fixture.Site{Name: "ghost"}) {
		n++
	}
	assert.Zero(t, n)

	_, ok := g.EdgeBetween(fixture.FiveSites[3], fixture.FiveSites[0])
	assert.False(t, ok)
	w, ok := g.WeightBetween(fixture.FiveSites[1], fixture.FiveSites[3], 0)
	assert.True(t, ok)
	assert.Equal(t, 1.0, w)
}

func TestGraph_NodesAndArcs(t *testing.T) {
	g, err := fixture.Lattice(3)
	require.NoError(t, err)
	assert.Equal(t, 9, g.Len())
	assert.Equal(t, 24, g.EdgeCount())

	seen := make(map[string]bool)
	for n := range g.Nodes() {
		seen[n.Name] = true
	}
	assert.Len(t, seen, 9)

	center, ok := g.Lookup(fixture.LatticeSite(1, 1))
	require.True(t, ok)
	arcs := g.Arcs(center)
	assert.Len(t, arcs, 4)
	for _, a := range arcs {
		assert.Equal(t, 1.0, spatial.Distance(g.Node(center), g.Node(a.To)))
		assert.NotEqual(t, core.NoNode, a.To)
	}
}
