package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/23skdu/indexpq/internal/logging"
)

// app carries the state shared by subcommands once the root has run
type app struct {
	cfg    Config
	logger zerolog.Logger

	envFile string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), logger: logging.DiscardLogger()}

	var (
		logLevel    string
		logFormat   string
		dumpMetrics bool
	)

	root := &cobra.Command{
		Use:           "indexpq",
		Short:         "Indexed minimum priority queue tools",
		Long:          `indexpq exercises an indexed min-heap: a word demo, Dijkstra and Prim over edge files, and a randomized benchmark.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(a.envFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("dump-metrics") {
				cfg.DumpMetrics = dumpMetrics
			}
			if err := ValidateConfig(&cfg); err != nil {
				return err
			}

			logger, err := logging.NewLogger(logging.Config{
				Format: cfg.LogFormat,
				Level:  cfg.LogLevel,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			a.logger.Debug().
				Str("log_format", cfg.LogFormat).
				Str("log_level", cfg.LogLevel).
				Bool("dump_metrics", cfg.DumpMetrics).
				Msg("Configuration loaded")
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.cfg.DumpMetrics {
				return nil
			}
			return dumpMetricsText(cmd.OutOrStdout(), prometheus.DefaultGatherer)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "minimum log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "json", "log format (json, console)")
	pf.BoolVar(&dumpMetrics, "dump-metrics", false, "print Prometheus metrics after the command")
	pf.StringVar(&a.envFile, "env-file", "", "dotenv file to load before reading INDEXPQ_* variables")

	root.AddCommand(
		newDemoCmd(a),
		newShortestPathsCmd(a),
		newSpanningForestCmd(a),
		newBenchCmd(a),
	)
	return root
}

// dumpMetricsText writes the gathered families in the text exposition format
func dumpMetricsText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
