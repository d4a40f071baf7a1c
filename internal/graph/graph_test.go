package graph

import (
	"context"
	"math"
	"sort"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pqerrors "github.com/23skdu/indexpq/internal/errors"
	"github.com/23skdu/indexpq/internal/logging"
	"github.com/23skdu/indexpq/internal/metrics"
)

// tinyEWD is the classic 8-vertex weighted digraph
var tinyEWD = []DirectedEdge{
	{4, 5, 0.35}, {5, 4, 0.35}, {4, 7, 0.37}, {5, 7, 0.28}, {7, 5, 0.28},
	{5, 1, 0.32}, {0, 4, 0.38}, {0, 2, 0.26}, {7, 3, 0.39}, {1, 3, 0.29},
	{2, 7, 0.34}, {6, 2, 0.40}, {3, 6, 0.52}, {6, 0, 0.58}, {6, 4, 0.93},
}

// tinyEWG is the classic 8-vertex weighted graph
var tinyEWG = []Edge{
	{4, 5, 0.35}, {4, 7, 0.37}, {5, 7, 0.28}, {0, 7, 0.16}, {1, 5, 0.32},
	{0, 4, 0.38}, {2, 3, 0.17}, {1, 7, 0.19}, {0, 2, 0.26}, {1, 2, 0.36},
	{1, 3, 0.29}, {2, 7, 0.34}, {6, 2, 0.40}, {3, 6, 0.52}, {6, 0, 0.58},
	{6, 4, 0.93},
}

func buildDigraph(t *testing.T, v int, edges []DirectedEdge) *EdgeWeightedDigraph {
	t.Helper()
	g, err := NewEdgeWeightedDigraph(v)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}
	return g
}

func buildGraph(t *testing.T, v int, edges []Edge) *EdgeWeightedGraph {
	t.Helper()
	g, err := NewEdgeWeightedGraph(v)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}
	return g
}

func TestNewGraphs_NegativeVertices(t *testing.T) {
	_, err := NewEdgeWeightedDigraph(-1)
	assert.Equal(t, pqerrors.ErrorTypeInvalidArgument, pqerrors.TypeOf(err))

	_, err = NewEdgeWeightedGraph(-3)
	assert.Equal(t, pqerrors.ErrorTypeInvalidArgument, pqerrors.TypeOf(err))
}

func TestAddEdge_Validation(t *testing.T) {
	d := buildDigraph(t, 3, nil)
	assert.Error(t, d.AddEdge(DirectedEdge{0, 3, 1}))
	assert.Error(t, d.AddEdge(DirectedEdge{-1, 0, 1}))
	assert.Error(t, d.AddEdge(DirectedEdge{0, 1, math.NaN()}))
	assert.Equal(t, 0, d.E())

	u := buildGraph(t, 3, nil)
	assert.Error(t, u.AddEdge(Edge{2, 5, 1}))
	require.NoError(t, u.AddEdge(Edge{1, 1, 0.5}))
	assert.Len(t, u.Adj(1), 1, "self loop is listed once")
	assert.Equal(t, 1, u.E())
}

func TestEdge_Other(t *testing.T) {
	e := Edge{3, 7, 1.5}
	assert.Equal(t, 7, e.Other(3))
	assert.Equal(t, 3, e.Other(7))
	assert.Equal(t, "3-7 1.50", e.String())
	assert.Equal(t, "0->2 0.26", DirectedEdge{0, 2, 0.26}.String())
}

func TestDijkstra_TinyEWD(t *testing.T) {
	g := buildDigraph(t, 8, tinyEWD)

	sp, err := Dijkstra(context.Background(), g, 0, WithLogger(logging.DiscardLogger()))
	require.NoError(t, err)

	want := []float64{0, 1.05, 0.26, 0.99, 0.38, 0.73, 1.51, 0.60}
	for v, d := range want {
		assert.InDelta(t, d, sp.DistTo(v), 1e-9, "distance to %d", v)
		assert.True(t, sp.HasPathTo(v))
	}

	path := sp.PathTo(6)
	require.Len(t, path, 4)
	assert.Equal(t, []DirectedEdge{{0, 2, 0.26}, {2, 7, 0.34}, {7, 3, 0.39}, {3, 6, 0.52}}, path)

	assert.Empty(t, sp.PathTo(0))
	assert.Equal(t, 0, sp.Source())
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := buildDigraph(t, 4, []DirectedEdge{{0, 1, 2}, {2, 3, 1}})

	sp, err := Dijkstra(context.Background(), g, 0)
	require.NoError(t, err)

	assert.False(t, sp.HasPathTo(3))
	assert.True(t, math.IsInf(sp.DistTo(3), 1))
	assert.Nil(t, sp.PathTo(3))
	assert.True(t, math.IsInf(sp.DistTo(99), 1))
}

func TestDijkstra_Errors(t *testing.T) {
	g := buildDigraph(t, 3, []DirectedEdge{{0, 1, -1}})

	_, err := Dijkstra(context.Background(), g, 0)
	assert.Equal(t, pqerrors.ErrorTypeInvalidArgument, pqerrors.TypeOf(err))

	_, err = Dijkstra(context.Background(), g, 5)
	assert.Equal(t, pqerrors.ErrorTypeInvalidArgument, pqerrors.TypeOf(err))
}

func TestDijkstra_Cancelled(t *testing.T) {
	g := buildDigraph(t, 8, tinyEWD)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Dijkstra(ctx, g, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDijkstra_Metrics(t *testing.T) {
	g := buildDigraph(t, 8, tinyEWD)
	settled := metrics.GraphVerticesSettledTotal.WithLabelValues(algorithmDijkstra)
	inserts := metrics.HeapOperationsTotal.WithLabelValues("insert")

	before := testutil.ToFloat64(settled)
	beforeInserts := testutil.ToFloat64(inserts)

	_, err := Dijkstra(context.Background(), g, 0, WithHeapObserver(metrics.NewHeapObserver()))
	require.NoError(t, err)

	assert.Equal(t, before+8, testutil.ToFloat64(settled))
	assert.Equal(t, beforeInserts+8, testutil.ToFloat64(inserts))
}

func TestDijkstra_DecreaseKey(t *testing.T) {
	// 1 is first reached directly, then improved through 2
	g := buildDigraph(t, 3, []DirectedEdge{{0, 1, 5}, {0, 2, 1}, {2, 1, 1}})
	decreases := metrics.HeapOperationsTotal.WithLabelValues("decrease_key")
	before := testutil.ToFloat64(decreases)

	sp, err := Dijkstra(context.Background(), g, 0, WithHeapObserver(metrics.NewHeapObserver()))
	require.NoError(t, err)

	assert.InDelta(t, 2.0, sp.DistTo(1), 1e-9)
	assert.Equal(t, []DirectedEdge{{0, 2, 1}, {2, 1, 1}}, sp.PathTo(1))
	assert.Equal(t, before+1, testutil.ToFloat64(decreases))
}

func TestPrim_TinyEWG(t *testing.T) {
	g := buildGraph(t, 8, tinyEWG)

	mst, err := Prim(context.Background(), g)
	require.NoError(t, err)

	assert.InDelta(t, 1.81, mst.Weight(), 1e-9)
	assert.Len(t, mst.Edges(), 7)

	var weights []float64
	for _, e := range mst.Edges() {
		weights = append(weights, e.Weight)
	}
	sort.Float64s(weights)
	assert.InDeltaSlice(t, []float64{0.16, 0.17, 0.19, 0.26, 0.28, 0.35, 0.40}, weights, 1e-9)
}

func TestPrim_Forest(t *testing.T) {
	// Two components plus an isolated vertex
	g := buildGraph(t, 6, []Edge{
		{0, 1, 4}, {1, 2, 1}, {0, 2, 2},
		{3, 4, 7},
	})

	mst, err := Prim(context.Background(), g)
	require.NoError(t, err)

	assert.Len(t, mst.Edges(), 3)
	assert.InDelta(t, 10.0, mst.Weight(), 1e-9)
}

func TestPrim_Cancelled(t *testing.T) {
	g := buildGraph(t, 8, tinyEWG)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Prim(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrim_Empty(t *testing.T) {
	g := buildGraph(t, 0, nil)
	mst, err := Prim(context.Background(), g)
	require.NoError(t, err)
	assert.Empty(t, mst.Edges())
	assert.Zero(t, mst.Weight())
}
