package core_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/internal/fixture"
	"github.com/katalvlaran/geograph/spatial"
)

var (
	siteA = fixture.Site{Name: "A", PX: 1, PY: 1}
	siteB = fixture.Site{Name: "B", PX: 2, PY: 1}
	siteC = fixture.Site{Name: "C", PX: 2, PY: 3}
)

func newBuilder(t *testing.T, opts ...core.BuilderOption) *core.Builder[fixture.Site] {
	t.Helper()
	b, err := core.NewBuilder[fixture.Site](spatial.Rect{MaxX: 10, MaxY: 10}, 2, opts...)
	require.NoError(t, err)
	return b
}

func TestNewBuilder_BadResolution(t *testing.T) {
	_, err := core.NewBuilder[fixture.Site](spatial.Rect{MaxX: 10, MaxY: 10}, 0)
	assert.ErrorIs(t, err, spatial.ErrBadResolution)
}

func TestBuild_EmptyGraph(t *testing.T) {
	b := newBuilder(t)
	_, err := b.Build()
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	// a self-edge alone leaves the graph empty
	b = newBuilder(t)
	require.NoError(t, b.AddEdge(siteA, siteA, "loop", core.Scalar(1)))
	_, err = b.Build()
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestAddEdge_Errors(t *testing.T) {
	b := newBuilder(t)
	assert.ErrorIs(t, b.AddEdge(siteA, siteB, "", nil), core.ErrNilWeight)

	far := fixture.Site{Name: "far", PX: 50, PY: 1}
	assert.ErrorIs(t, b.AddEdge(siteA, far, "", core.Scalar(1)), spatial.ErrOutOfBounds)

	require.NoError(t, b.AddEdge(siteA, siteB, "ab", core.Scalar(1)))
	_, err := b.Build()
	require.NoError(t, err)

	assert.ErrorIs(t, b.AddEdge(siteB, siteC, "", core.Scalar(1)), core.ErrBuilt)
	_, err = b.Build()
	assert.ErrorIs(t, err, core.ErrBuilt)
}

// TestAddEdge_FailureLeavesNoTrace adds an edge whose second endpoint is out
// of bounds and checks the first endpoint was not registered.
func TestAddEdge_FailureLeavesNoTrace(t *testing.T) {
	b := newBuilder(t)
	far := fixture.Site{Name: "far", PX: 50, PY: 50}

	assert.ErrorIs(t, b.AddEdge(siteC, far, "", core.Scalar(1)), spatial.ErrOutOfBounds)
	assert.ErrorIs(t, b.AddEdge(far, siteC, "", core.Scalar(1)), spatial.ErrOutOfBounds)
	assert.ErrorIs(t, b.AddEdge(siteC, fixture.Site{Name: "nan", PX: math.NaN()}, "", core.Scalar(1)), spatial.ErrOutOfBounds)

	require.NoError(t, b.AddEdge(siteA, siteB, "ab", core.Scalar(1)))
	g, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.Contains(siteC))
	assert.Empty(t, g.ObjectsAt(siteC))
	assert.Equal(t, []fixture.Site{siteA}, g.Nearest(spatial.Pt(1, 1), 1, 0.5))
}

func TestAddEdge_DuplicateKeepsSmaller(t *testing.T) {
	b := newBuilder(t)
	require.NoError(t, b.AddEdge(siteA, siteB, "first", core.Scalar(5)))
	require.NoError(t, b.AddEdge(siteA, siteB, "heavier", core.Scalar(8)))
	require.NoError(t, b.AddEdge(siteA, siteB, "tie", core.Scalar(5)))
	require.NoError(t, b.AddEdge(siteA, siteB, "lighter", core.Scalar(3)))
	require.NoError(t, b.AddEdge(siteB, siteA, "reverse", core.Scalar(9)))

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, g.Len())

	e, ok := g.EdgeBetween(siteA, siteB)
	require.True(t, ok)
	assert.Equal(t, "lighter", e.Label)
	assert.Equal(t, core.Scalar(3), e.Weight)

	w, ok := g.WeightBetween(siteB, siteA, 0)
	require.True(t, ok)
	assert.Equal(t, 9.0, w)
}

func TestAddEdge_CompareMode(t *testing.T) {
	b := newBuilder(t, core.WithCompareMode(1))
	require.NoError(t, b.AddEdge(siteA, siteB, "walk", core.Modal{1, 20}))
	require.NoError(t, b.AddEdge(siteA, siteB, "bike", core.Modal{4, 6}))

	g, err := b.Build()
	require.NoError(t, err)
	e, _ := g.EdgeBetween(siteA, siteB)
	assert.Equal(t, "bike", e.Label, "mode 1 decides: 6 < 20")
}

func TestWithCompareMode_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { core.WithCompareMode(-1) })
	assert.Panics(t, func() { core.WithLogger(nil) })
}

func TestBuild_LogsStatistics(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	b := newBuilder(t, core.WithLogger(logger))
	require.NoError(t, b.AddBidirectional(siteA, siteC, "ac", core.Scalar(2)))
	_, err := b.Build()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "graph built")
	assert.Contains(t, buf.String(), "edges=2")
}

func TestModal_Value(t *testing.T) {
	m := core.Modal{3, 4}
	assert.Equal(t, 4.0, m.Value(1))
	assert.True(t, math.IsInf(m.Value(2), 1))
	assert.True(t, math.IsInf(m.Value(-1), 1))
	assert.Equal(t, 7.5, core.Scalar(7.5).Value(42))
}
