package pairing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geograph/pairing"
)

func TestIndex_AddExtract(t *testing.T) {
	ix := pairing.NewIndex[string](4)
	require.NoError(t, ix.Add("a", 3))
	require.NoError(t, ix.Add("b", 1))
	require.NoError(t, ix.Add("c", 2))

	assert.True(t, ix.Contains("b"))
	p, ok := ix.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2.0, p)

	it, err := ix.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, pairing.Item[string]{Key: "b", Priority: 1}, it)
	assert.False(t, ix.Contains("b"), "extraction drops the index entry")
	assert.Equal(t, 2, ix.Len())
}

func TestIndex_Update(t *testing.T) {
	ix := pairing.NewIndex[int](0)
	require.NoError(t, ix.Add(1, math.Inf(1)))
	require.NoError(t, ix.Add(2, 10))

	changed, err := ix.Update(1, 4)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = ix.Update(2, 12)
	require.NoError(t, err)
	assert.False(t, changed)

	it, err := ix.FindMin()
	require.NoError(t, err)
	assert.Equal(t, 1, it.Key)
	assert.Equal(t, 4.0, it.Priority)
}

func TestIndex_AddExistingLowers(t *testing.T) {
	ix := pairing.NewIndex[string](0)
	require.NoError(t, ix.Add("x", 9))
	require.NoError(t, ix.Add("x", 2))
	require.NoError(t, ix.Add("x", 7))

	assert.Equal(t, 1, ix.Len())
	p, _ := ix.Get("x")
	assert.Equal(t, 2.0, p)
}

func TestIndex_Errors(t *testing.T) {
	ix := pairing.NewIndex[string](0)
	assert.True(t, ix.IsEmpty())

	_, err := ix.Update("ghost", 1)
	assert.ErrorIs(t, err, pairing.ErrUnknownHandle)

	_, err = ix.ExtractMin()
	assert.ErrorIs(t, err, pairing.ErrEmpty)

	_, ok := ix.Get("ghost")
	assert.False(t, ok)
}
