package main

import (
	"fmt"
	"io"
	"math"

	gojson "github.com/goccy/go-json"

	"github.com/23skdu/indexpq/internal/graph"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// PathReport is the JSON form of one shortest path
type PathReport struct {
	Target    int          `json:"target"`
	Reachable bool         `json:"reachable"`
	Distance  *float64     `json:"distance,omitempty"`
	Edges     []EdgeReport `json:"edges,omitempty"`
}

// EdgeReport is the JSON form of a graph edge
type EdgeReport struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// ShortestPathsReport is the JSON output of the sp command
type ShortestPathsReport struct {
	Source int          `json:"source"`
	Paths  []PathReport `json:"paths"`
}

// SpanningForestReport is the JSON output of the mst command
type SpanningForestReport struct {
	Weight float64      `json:"weight"`
	Edges  []EdgeReport `json:"edges"`
}

func checkOutput(format string) error {
	if format != outputText && format != outputJSON {
		return fmt.Errorf("output must be %q or %q, got %q", outputText, outputJSON, format)
	}
	return nil
}

func newShortestPathsReport(g *graph.EdgeWeightedDigraph, sp *graph.ShortestPaths) ShortestPathsReport {
	r := ShortestPathsReport{Source: sp.Source(), Paths: make([]PathReport, 0, g.V())}
	for v := 0; v < g.V(); v++ {
		p := PathReport{Target: v, Reachable: sp.HasPathTo(v)}
		if p.Reachable {
			d := sp.DistTo(v)
			if !math.IsInf(d, 0) {
				p.Distance = &d
			}
			for _, e := range sp.PathTo(v) {
				p.Edges = append(p.Edges, EdgeReport{From: e.From, To: e.To, Weight: e.Weight})
			}
		}
		r.Paths = append(r.Paths, p)
	}
	return r
}

func newSpanningForestReport(f *graph.SpanningForest) SpanningForestReport {
	r := SpanningForestReport{Weight: f.Weight(), Edges: make([]EdgeReport, 0, len(f.Edges()))}
	for _, e := range f.Edges() {
		r.Edges = append(r.Edges, EdgeReport{From: e.V, To: e.W, Weight: e.Weight})
	}
	return r
}

func writeJSON(w io.Writer, v any) error {
	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
