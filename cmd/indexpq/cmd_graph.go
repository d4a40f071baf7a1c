package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/23skdu/indexpq/internal/graph"
	"github.com/23skdu/indexpq/internal/graphio"
	"github.com/23skdu/indexpq/internal/metrics"
)

func newShortestPathsCmd(a *app) *cobra.Command {
	var (
		path   string
		source int
		output string
	)
	cmd := &cobra.Command{
		Use:   "sp",
		Short: "Single-source shortest paths over a weighted digraph file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			list, err := graphio.Load(path)
			if err != nil {
				return err
			}
			g, err := list.Digraph()
			if err != nil {
				return err
			}
			a.logger.Info().Str("graph", path).Int("vertices", g.V()).Int("edges", g.E()).Msg("Graph loaded")

			sp, err := graph.Dijkstra(cmd.Context(), g, source,
				graph.WithLogger(a.logger),
				graph.WithHeapObserver(&metrics.HeapObserver{TrackSize: true}),
			)
			if err != nil {
				return err
			}
			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), newShortestPathsReport(g, sp))
			}
			printShortestPaths(cmd.OutOrStdout(), g, sp)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "graph", "", "edge file (.txt, .csv or .parquet)")
	cmd.Flags().IntVar(&source, "source", 0, "source vertex")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, json)")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}

func printShortestPaths(w io.Writer, g *graph.EdgeWeightedDigraph, sp *graph.ShortestPaths) {
	for v := 0; v < g.V(); v++ {
		if !sp.HasPathTo(v) {
			fmt.Fprintf(w, "%d to %d         no path\n", sp.Source(), v)
			continue
		}
		fmt.Fprintf(w, "%d to %d (%.2f)  ", sp.Source(), v, sp.DistTo(v))
		for _, e := range sp.PathTo(v) {
			fmt.Fprintf(w, "%s   ", e)
		}
		fmt.Fprintln(w)
	}
}

func newSpanningForestCmd(a *app) *cobra.Command {
	var path, output string
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning forest of an undirected weighted graph file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			list, err := graphio.Load(path)
			if err != nil {
				return err
			}
			g, err := list.Graph()
			if err != nil {
				return err
			}
			a.logger.Info().Str("graph", path).Int("vertices", g.V()).Int("edges", g.E()).Msg("Graph loaded")

			mst, err := graph.Prim(cmd.Context(), g,
				graph.WithLogger(a.logger),
				graph.WithHeapObserver(&metrics.HeapObserver{TrackSize: true}),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output == outputJSON {
				return writeJSON(out, newSpanningForestReport(mst))
			}
			for _, e := range mst.Edges() {
				fmt.Fprintln(out, e)
			}
			fmt.Fprintf(out, "%.5f\n", mst.Weight())
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "graph", "", "edge file (.txt, .csv or .parquet)")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, json)")
	_ = cmd.MarkFlagRequired("graph")
	return cmd
}
