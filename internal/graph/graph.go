package graph

import (
	"fmt"
	"math"

	pqerrors "github.com/23skdu/indexpq/internal/errors"
)

// DirectedEdge is a weighted edge From -> To.
type DirectedEdge struct {
	From   int
	To     int
	Weight float64
}

func (e DirectedEdge) String() string {
	return fmt.Sprintf("%d->%d %.2f", e.From, e.To, e.Weight)
}

// Edge is a weighted undirected edge between V and W.
type Edge struct {
	V      int
	W      int
	Weight float64
}

// Other returns the endpoint of e that is not v.
func (e Edge) Other(v int) int {
	if v == e.V {
		return e.W
	}
	return e.V
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d %.2f", e.V, e.W, e.Weight)
}

// EdgeWeightedDigraph is an adjacency-list directed graph over vertices 0..V-1.
type EdgeWeightedDigraph struct {
	v   int
	e   int
	adj [][]DirectedEdge
}

// NewEdgeWeightedDigraph creates a digraph with v vertices and no edges.
func NewEdgeWeightedDigraph(v int) (*EdgeWeightedDigraph, error) {
	if v < 0 {
		return nil, pqerrors.NewInvalidArgumentError("NewEdgeWeightedDigraph",
			fmt.Sprintf("negative vertex count %d", v))
	}
	return &EdgeWeightedDigraph{v: v, adj: make([][]DirectedEdge, v)}, nil
}

// V returns the number of vertices.
func (g *EdgeWeightedDigraph) V() int { return g.v }

// E returns the number of edges.
func (g *EdgeWeightedDigraph) E() int { return g.e }

// AddEdge adds e to the digraph.
func (g *EdgeWeightedDigraph) AddEdge(e DirectedEdge) error {
	if err := checkEdge("AddEdge", g.v, e.From, e.To, e.Weight); err != nil {
		return err
	}
	g.adj[e.From] = append(g.adj[e.From], e)
	g.e++
	return nil
}

// Adj returns the edges leaving v. The slice must not be modified.
func (g *EdgeWeightedDigraph) Adj(v int) []DirectedEdge {
	return g.adj[v]
}

// EdgeWeightedGraph is an adjacency-list undirected graph over vertices 0..V-1.
type EdgeWeightedGraph struct {
	v   int
	e   int
	adj [][]Edge
}

// NewEdgeWeightedGraph creates a graph with v vertices and no edges.
func NewEdgeWeightedGraph(v int) (*EdgeWeightedGraph, error) {
	if v < 0 {
		return nil, pqerrors.NewInvalidArgumentError("NewEdgeWeightedGraph",
			fmt.Sprintf("negative vertex count %d", v))
	}
	return &EdgeWeightedGraph{v: v, adj: make([][]Edge, v)}, nil
}

// V returns the number of vertices.
func (g *EdgeWeightedGraph) V() int { return g.v }

// E returns the number of edges.
func (g *EdgeWeightedGraph) E() int { return g.e }

// AddEdge adds e to the adjacency lists of both endpoints.
func (g *EdgeWeightedGraph) AddEdge(e Edge) error {
	if err := checkEdge("AddEdge", g.v, e.V, e.W, e.Weight); err != nil {
		return err
	}
	g.adj[e.V] = append(g.adj[e.V], e)
	if e.W != e.V {
		g.adj[e.W] = append(g.adj[e.W], e)
	}
	g.e++
	return nil
}

// Adj returns the edges incident to v. The slice must not be modified.
func (g *EdgeWeightedGraph) Adj(v int) []Edge {
	return g.adj[v]
}

func checkEdge(op string, n, a, b int, weight float64) error {
	for _, v := range []int{a, b} {
		if v < 0 || v >= n {
			return pqerrors.NewInvalidArgumentError(op,
				fmt.Sprintf("vertex %d outside [0, %d)", v, n)).WithContext("vertex", v)
		}
	}
	if math.IsNaN(weight) {
		return pqerrors.NewInvalidArgumentError(op, "edge weight is NaN")
	}
	return nil
}
