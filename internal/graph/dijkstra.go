package graph

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/23skdu/indexpq/indexpq"
	pqerrors "github.com/23skdu/indexpq/internal/errors"
	"github.com/23skdu/indexpq/internal/metrics"
)

const algorithmDijkstra = "dijkstra"

// ShortestPaths holds single-source shortest paths computed by Dijkstra's
// algorithm.
type ShortestPaths struct {
	source  int
	distTo  []float64
	edgeTo  []DirectedEdge
	hasEdge []bool
}

// Dijkstra computes shortest paths from source in g. Edge weights must be
// non-negative. The context is checked between vertex extractions.
func Dijkstra(ctx context.Context, g *EdgeWeightedDigraph, source int, opts ...Option) (*ShortestPaths, error) {
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if source < 0 || source >= g.V() {
		return nil, pqerrors.NewInvalidArgumentError("Dijkstra",
			fmt.Sprintf("source %d outside [0, %d)", source, g.V())).WithContext("source", source)
	}
	for v := 0; v < g.V(); v++ {
		for _, e := range g.Adj(v) {
			if e.Weight < 0 {
				return nil, pqerrors.NewInvalidArgumentError("Dijkstra",
					fmt.Sprintf("edge %s has negative weight", e)).WithContext("edge", e)
			}
		}
	}

	start := time.Now()
	sp := &ShortestPaths{
		source:  source,
		distTo:  make([]float64, g.V()),
		edgeTo:  make([]DirectedEdge, g.V()),
		hasEdge: make([]bool, g.V()),
	}
	for v := range sp.distTo {
		sp.distTo[v] = math.Inf(1)
	}
	sp.distTo[source] = 0

	pq, err := indexpq.New[float64](g.V(), o.heapOptions()...)
	if err != nil {
		return nil, err
	}
	if err := pq.Insert(source, 0); err != nil {
		return nil, err
	}

	settled := 0
	for !pq.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v, err := pq.DeleteMin()
		if err != nil {
			return nil, err
		}
		settled++

		for _, e := range g.Adj(v) {
			if err := sp.relax(pq, e); err != nil {
				return nil, err
			}
		}
	}

	elapsed := time.Since(start)
	metrics.GraphRunDurationSeconds.WithLabelValues(algorithmDijkstra).Observe(elapsed.Seconds())
	metrics.GraphVerticesSettledTotal.WithLabelValues(algorithmDijkstra).Add(float64(settled))

	o.logger.Debug().
		Int("source", source).
		Int("vertices", g.V()).
		Int("edges", g.E()).
		Int("settled", settled).
		Dur("duration", elapsed).
		Msg("Shortest paths computed")

	return sp, nil
}

func (sp *ShortestPaths) relax(pq *indexpq.IndexedMinHeap[float64], e DirectedEdge) error {
	v, w := e.From, e.To
	dist := sp.distTo[v] + e.Weight
	if sp.distTo[w] <= dist {
		return nil
	}

	sp.distTo[w] = dist
	sp.edgeTo[w] = e
	sp.hasEdge[w] = true

	queued, err := pq.Contains(w)
	if err != nil {
		return err
	}
	if queued {
		return pq.DecreaseKey(w, dist)
	}
	return pq.Insert(w, dist)
}

// Source returns the source vertex.
func (sp *ShortestPaths) Source() int { return sp.source }

// DistTo returns the length of the shortest path to v, or +Inf when v is
// unreachable or not a vertex.
func (sp *ShortestPaths) DistTo(v int) float64 {
	if v < 0 || v >= len(sp.distTo) {
		return math.Inf(1)
	}
	return sp.distTo[v]
}

// HasPathTo reports whether v is reachable from the source.
func (sp *ShortestPaths) HasPathTo(v int) bool {
	return !math.IsInf(sp.DistTo(v), 1)
}

// PathTo returns the edges of a shortest path from the source to v, or nil
// when there is none. The path to the source itself is empty.
func (sp *ShortestPaths) PathTo(v int) []DirectedEdge {
	if !sp.HasPathTo(v) {
		return nil
	}
	var rev []DirectedEdge
	for x := v; sp.hasEdge[x]; x = sp.edgeTo[x].From {
		rev = append(rev, sp.edgeTo[x])
	}
	path := make([]DirectedEdge, len(rev))
	for i, e := range rev {
		path[len(rev)-1-i] = e
	}
	return path
}
