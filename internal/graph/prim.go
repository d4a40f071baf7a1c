package graph

import (
	"context"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/23skdu/indexpq/indexpq"
	"github.com/23skdu/indexpq/internal/metrics"
	"github.com/23skdu/indexpq/internal/pool"
)

const algorithmPrim = "prim"

// SpanningForest is a minimum spanning forest computed by the eager version
// of Prim's algorithm. Disconnected graphs get one tree per component.
type SpanningForest struct {
	edges  []Edge
	weight float64
}

type primState struct {
	g       *EdgeWeightedGraph
	pq      *indexpq.IndexedMinHeap[float64]
	distTo  []float64
	edgeTo  []Edge
	hasEdge []bool
	marked  *roaring.Bitmap
	settled int
}

// Prim computes a minimum spanning forest of g. The context is checked
// between vertex extractions.
func Prim(ctx context.Context, g *EdgeWeightedGraph, opts ...Option) (*SpanningForest, error) {
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	pq, err := indexpq.New[float64](g.V(), o.heapOptions()...)
	if err != nil {
		return nil, err
	}

	st := &primState{
		g:       g,
		pq:      pq,
		distTo:  make([]float64, g.V()),
		edgeTo:  make([]Edge, g.V()),
		hasEdge: make([]bool, g.V()),
		marked:  pool.GetVertexSet(),
	}
	defer pool.PutVertexSet(st.marked)
	for v := range st.distTo {
		st.distTo[v] = math.Inf(1)
	}

	trees := 0
	for v := 0; v < g.V(); v++ {
		if st.marked.Contains(uint32(v)) {
			continue
		}
		trees++
		if err := st.grow(ctx, v); err != nil {
			return nil, err
		}
	}

	forest := &SpanningForest{}
	for v := 0; v < g.V(); v++ {
		if st.hasEdge[v] {
			forest.edges = append(forest.edges, st.edgeTo[v])
			forest.weight += st.edgeTo[v].Weight
		}
	}

	elapsed := time.Since(start)
	metrics.GraphRunDurationSeconds.WithLabelValues(algorithmPrim).Observe(elapsed.Seconds())
	metrics.GraphVerticesSettledTotal.WithLabelValues(algorithmPrim).Add(float64(st.settled))

	o.logger.Debug().
		Int("vertices", g.V()).
		Int("edges", g.E()).
		Int("trees", trees).
		Float64("weight", forest.weight).
		Dur("duration", elapsed).
		Msg("Spanning forest computed")

	return forest, nil
}

// grow builds the tree containing s.
func (st *primState) grow(ctx context.Context, s int) error {
	st.distTo[s] = 0
	if err := st.pq.Insert(s, 0); err != nil {
		return err
	}
	for !st.pq.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := st.pq.DeleteMin()
		if err != nil {
			return err
		}
		st.settled++
		if err := st.scan(v); err != nil {
			return err
		}
	}
	return nil
}

func (st *primState) scan(v int) error {
	st.marked.Add(uint32(v))
	for _, e := range st.g.Adj(v) {
		w := e.Other(v)
		if st.marked.Contains(uint32(w)) || e.Weight >= st.distTo[w] {
			continue
		}

		st.distTo[w] = e.Weight
		st.edgeTo[w] = e
		st.hasEdge[w] = true

		queued, err := st.pq.Contains(w)
		if err != nil {
			return err
		}
		if queued {
			err = st.pq.DecreaseKey(w, e.Weight)
		} else {
			err = st.pq.Insert(w, e.Weight)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Edges returns the forest edges ordered by the vertex they connect.
func (f *SpanningForest) Edges() []Edge {
	return f.edges
}

// Weight returns the total weight of the forest.
func (f *SpanningForest) Weight() float64 {
	return f.weight
}
