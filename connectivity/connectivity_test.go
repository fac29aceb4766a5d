package connectivity_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulith/connectivity"
	"github.com/katalvlaran/eulith/core"
)

func TestConnected_Errors(t *testing.T) {
	_, err := connectivity.Connected(nil)
	assert.ErrorIs(t, err, connectivity.ErrGraphNil)

	dir := core.NewGraph(core.WithDirected(true))
	_, err = connectivity.Connected(dir)
	assert.ErrorIs(t, err, connectivity.ErrDirectedGraph)
}

func TestWeakStrong_Errors(t *testing.T) {
	_, err := connectivity.WeaklyConnected(nil)
	assert.ErrorIs(t, err, connectivity.ErrGraphNil)
	_, err = connectivity.StronglyConnected(nil)
	assert.ErrorIs(t, err, connectivity.ErrGraphNil)

	und := core.NewGraph()
	_, err = connectivity.WeaklyConnected(und)
	assert.ErrorIs(t, err, connectivity.ErrUndirectedGraph)
	_, err = connectivity.StronglyConnected(und)
	assert.ErrorIs(t, err, connectivity.ErrUndirectedGraph)
}

// TestConnected_EmptyGraph pins the zero-vertex policy: vacuously connected.
func TestConnected_EmptyGraph(t *testing.T) {
	ok, err := connectivity.Connected(core.NewGraph())
	require.NoError(t, err)
	assert.True(t, ok)

	dir := core.NewGraph(core.WithDirected(true))
	ok, err = connectivity.WeaklyConnected(dir)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = connectivity.StronglyConnected(dir)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConnected_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	ok, err := connectivity.Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConnected_Chain(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	ok, err := connectivity.Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestConnected_IsolatedVertexIsStrict pins the whole-graph policy: a lone
// zero-degree vertex breaks connectivity even though it carries no edges.
func TestConnected_IsolatedVertexIsStrict(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	require.NoError(t, g.AddVertex("C"))

	ok, err := connectivity.Connected(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConnected_TwoComponents(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("P", "Q")
	ok, err := connectivity.Connected(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConnected_MultigraphAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "B")
	ok, err := connectivity.Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStronglyConnected_Cycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("0", "1")
	_, _ = g.AddEdge("1", "2")
	_, _ = g.AddEdge("2", "0")

	ok, err := connectivity.StronglyConnected(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestWeakNotStrong exercises the reversed second pass: a directed path is
// weakly connected but not strongly connected.
func TestWeakNotStrong(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")

	weak, err := connectivity.WeaklyConnected(g)
	require.NoError(t, err)
	assert.True(t, weak)

	strong, err := connectivity.StronglyConnected(g)
	require.NoError(t, err)
	assert.False(t, strong)
}

// TestStronglyConnected_ForwardSpansButNotReverse covers the case where the
// forward pass alone would wrongly accept: a star of out-edges from the
// start reaches everything, but nothing comes back.
func TestStronglyConnected_ForwardSpansButNotReverse(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("S", "A")
	_, _ = g.AddEdge("S", "B")

	ok, err := connectivity.StronglyConnected(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStronglyConnected_IsolatedVertexIsStrict(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "A")
	require.NoError(t, g.AddVertex("C"))

	strong, err := connectivity.StronglyConnected(g)
	require.NoError(t, err)
	assert.False(t, strong)

	weak, err := connectivity.WeaklyConnected(g)
	require.NoError(t, err)
	assert.False(t, weak)
}

func TestComponents_Deterministic(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("D", "B")
	_, _ = g.AddEdge("B", "A")
	_, _ = g.AddEdge("X", "Y")
	require.NoError(t, g.AddVertex("Z"))

	comps, err := connectivity.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "D"}, {"X", "Y"}, {"Z"}}, comps)
}

func TestComponents_DirectionErased(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("C", "B") // only reachable against direction

	comps, err := connectivity.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}}, comps)
}

func TestComponents_NilGraph(t *testing.T) {
	_, err := connectivity.Components(nil)
	assert.ErrorIs(t, err, connectivity.ErrGraphNil)
}

func TestWithContext_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 500; i++ {
		_, _ = g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate

	_, err := connectivity.Connected(g, connectivity.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
