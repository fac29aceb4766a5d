package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulith/builder"
	"github.com/katalvlaran/eulith/core"
)

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_EmptyConstructorList(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil)
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, 0, g.VertexCount())
}

func TestBuildGraph_ConstructorsApplyInOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Star(3))
	require.NoError(t, err)

	// Path contributes 0,1,2; Star contributes Center,1,2 (shared leaves).
	assert.Equal(t, []string{"0", "1", "2", "Center"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestCycle_Validation(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle_Shape(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "2", "3"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("3", "0"), "closing edge")
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 2, d)
	}
}

func TestPath_Shape(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.False(t, g.HasEdge("3", "0"), "a path does not close")
}

func TestComplete_Shape(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Complete(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount(), "C(5,2) unordered pairs")
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 4, d)
	}
}

func TestComplete_DirectedBothOrientations(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		nil,
		builder.Complete(4),
	)
	require.NoError(t, err)

	assert.Equal(t, 12, g.EdgeCount(), "n(n-1) ordered pairs")
	for _, v := range g.Vertices() {
		in, err := g.InDegree(v)
		require.NoError(t, err)
		out, err := g.OutDegree(v)
		require.NoError(t, err)
		assert.Equal(t, 3, in)
		assert.Equal(t, 3, out)
	}
}

func TestStar_Shape(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Star(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.BuildGraph(nil, nil, builder.Star(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "Center"}, g.Vertices())

	center, err := g.Degree("Center")
	require.NoError(t, err)
	assert.Equal(t, 3, center)
	for _, leaf := range []string{"1", "2", "3"} {
		d, err := g.Degree(leaf)
		require.NoError(t, err)
		assert.Equal(t, 1, d)
	}
}

func TestWithIDScheme(t *testing.T) {
	g, err := builder.BuildGraph(
		nil,
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) string {
			return fmt.Sprintf("n%02d", i)
		})},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"n00", "n01", "n02"}, g.Vertices())

	// nil scheme is ignored, decimal default survives
	g, err = builder.BuildGraph(
		nil,
		[]builder.BuilderOption{builder.WithIDScheme(nil)},
		builder.Path(2),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, g.Vertices())
}

func TestBridges_SevenAndFive(t *testing.T) {
	seven, err := builder.BuildGraph(
		[]core.GraphOption{core.WithMultiEdges()},
		nil,
		builder.Bridges(builder.SevenBridges()),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, seven.Vertices())
	assert.Equal(t, 7, seven.EdgeCount())

	five, err := builder.BuildGraph(
		[]core.GraphOption{core.WithMultiEdges()},
		nil,
		builder.Bridges(builder.FiveBridges()),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, five.Vertices())
	assert.Equal(t, 5, five.EdgeCount())
}

func TestBridges_ModeValidation(t *testing.T) {
	// bridges are undirected by nature
	_, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithMultiEdges()},
		nil,
		builder.Bridges(builder.SevenBridges()),
	)
	assert.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)

	// Königsberg has parallel bridges, so plain mode is rejected up front
	_, err = builder.BuildGraph(nil, nil, builder.Bridges(builder.SevenBridges()))
	assert.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)

	// Kaliningrad has no parallel pair, plain mode is fine
	g, err := builder.BuildGraph(nil, nil, builder.Bridges(builder.FiveBridges()))
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
}

// TestDeterministicEdgeIDs pins the reproducibility contract: same inputs,
// same generated edge IDs.
func TestDeterministicEdgeIDs(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithMultiEdges()},
			nil,
			builder.Bridges(builder.SevenBridges()),
		)
		require.NoError(t, err)
		return g
	}

	a, b := build(), build()
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, a.Vertices(), b.Vertices())
}
