package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pqerrors "github.com/23skdu/indexpq/internal/errors"
	"github.com/23skdu/indexpq/internal/graph"
)

// MaxVertices bounds the vertex count of a decoded edge file. Vertex sets
// are keyed by uint32.
const MaxVertices = math.MaxInt32

// maxEdgePrealloc caps the edge slice reserved from a declared edge count.
const maxEdgePrealloc = 1 << 16

// EdgeRecord is one weighted edge as stored on disk.
type EdgeRecord struct {
	From   int64   `parquet:"from"`
	To     int64   `parquet:"to"`
	Weight float64 `parquet:"weight"`
}

// EdgeList is a decoded edge file.
type EdgeList struct {
	Vertices int
	Edges    []EdgeRecord
}

// Digraph builds a directed graph with one edge per record.
func (l *EdgeList) Digraph() (*graph.EdgeWeightedDigraph, error) {
	g, err := graph.NewEdgeWeightedDigraph(l.Vertices)
	if err != nil {
		return nil, err
	}
	for _, r := range l.Edges {
		if err := g.AddEdge(graph.DirectedEdge{From: int(r.From), To: int(r.To), Weight: r.Weight}); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Graph builds an undirected graph with one edge per record.
func (l *EdgeList) Graph() (*graph.EdgeWeightedGraph, error) {
	g, err := graph.NewEdgeWeightedGraph(l.Vertices)
	if err != nil {
		return nil, err
	}
	for _, r := range l.Edges {
		if err := g.AddEdge(graph.Edge{V: int(r.From), W: int(r.To), Weight: r.Weight}); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Load reads an edge file, choosing the decoder from the extension:
// .csv, .parquet, or anything else as the text format.
func Load(path string) (*EdgeList, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return ReadParquet(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, pqerrors.WrapStorageError(err, "Load", "open edge file").WithContext("path", path)
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, pqerrors.WrapStorageError(err, "Load", "open edge file").WithContext("path", path)
		}
		defer f.Close()
		return ReadText(f)
	}
}

// ReadText decodes the whitespace separated format: the vertex count, the
// edge count, then one "from to weight" triple per edge.
func ReadText(r io.Reader) (*EdgeList, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", pqerrors.WrapStorageError(err, "ReadText", "read "+what)
			}
			return "", pqerrors.NewStorageError("ReadText", "unexpected end of input reading "+what)
		}
		return sc.Text(), nil
	}
	nextInt := func(what string) (int64, error) {
		tok, err := next(what)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, pqerrors.WrapStorageError(err, "ReadText", "parse "+what)
		}
		return v, nil
	}

	v, err := nextInt("vertex count")
	if err != nil {
		return nil, err
	}
	e, err := nextInt("edge count")
	if err != nil {
		return nil, err
	}
	if v < 0 || e < 0 {
		return nil, pqerrors.NewStorageError("ReadText",
			fmt.Sprintf("negative header values V=%d E=%d", v, e))
	}
	if v > MaxVertices {
		return nil, pqerrors.NewStorageError("ReadText",
			fmt.Sprintf("vertex count %d exceeds %d", v, MaxVertices))
	}

	list := &EdgeList{Vertices: int(v), Edges: make([]EdgeRecord, 0, min(e, maxEdgePrealloc))}
	for i := int64(0); i < e; i++ {
		from, err := nextInt("edge source")
		if err != nil {
			return nil, err
		}
		to, err := nextInt("edge target")
		if err != nil {
			return nil, err
		}
		tok, err := next("edge weight")
		if err != nil {
			return nil, err
		}
		w, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, pqerrors.WrapStorageError(err, "ReadText", "parse edge weight")
		}
		list.Edges = append(list.Edges, EdgeRecord{From: from, To: to, Weight: w})
	}
	return list, nil
}

// vertexCount returns one more than the largest endpoint. Endpoints at or
// above MaxVertices are a storage error; negative ones are left for the
// graph builders to reject.
func vertexCount(op string, edges []EdgeRecord) (int, error) {
	var top int64 = -1
	for _, e := range edges {
		top = max(top, e.From, e.To)
	}
	if top >= MaxVertices {
		return 0, pqerrors.NewStorageError(op,
			fmt.Sprintf("vertex %d exceeds %d", top, MaxVertices-1))
	}
	return int(top + 1), nil
}
