package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/23skdu/indexpq/indexpq"
	"github.com/23skdu/indexpq/internal/metrics"
)

func newBenchCmd(a *app) *cobra.Command {
	var trials, size, workers int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run randomized insert, update and drain trials concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("trials") {
				a.cfg.BenchTrials = trials
			}
			if flags.Changed("size") {
				a.cfg.BenchSize = size
			}
			if flags.Changed("workers") {
				a.cfg.BenchWorkers = workers
			}
			if err := ValidateConfig(&a.cfg); err != nil {
				return err
			}

			runID := uuid.New().String()
			a.logger.Debug().Str("run_id", runID).Uint64("seed", a.cfg.Seed).Msg("Benchmark starting")

			res, err := runBench(cmd.Context(), a.cfg)
			if err != nil {
				a.logger.Error().Err(err).Str("run_id", runID).Msg("Benchmark failed")
				return err
			}
			a.logger.Info().
				Str("run_id", runID).
				Int("trials", a.cfg.BenchTrials).
				Int("size", a.cfg.BenchSize).
				Int("workers", a.cfg.BenchWorkers).
				Int64("ops", res.Ops).
				Dur("elapsed", res.Elapsed).
				Msg("Benchmark finished")

			fmt.Fprintf(cmd.OutOrStdout(), "%d trials, %d ops in %s (%.0f ops/sec)\n",
				a.cfg.BenchTrials, res.Ops, res.Elapsed.Round(time.Millisecond), res.OpsPerSecond())
			return nil
		},
	}
	cmd.Flags().IntVar(&trials, "trials", 32, "number of independent trials")
	cmd.Flags().IntVar(&size, "size", 10000, "capacity of each trial's queue")
	cmd.Flags().IntVar(&workers, "workers", 4, "trials run at the same time")
	return cmd
}

type benchResult struct {
	Ops     int64
	Elapsed time.Duration
}

func (r benchResult) OpsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ops) / r.Elapsed.Seconds()
}

// runBench runs cfg.BenchTrials trials on at most cfg.BenchWorkers
// goroutines. The first failing trial cancels the rest.
func runBench(ctx context.Context, cfg Config) (benchResult, error) {
	start := time.Now()
	var ops atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.BenchWorkers)
	for t := 0; t < cfg.BenchTrials; t++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(cfg.Seed, uint64(t)))
			n, err := runTrial(rng, cfg.BenchSize)
			if err != nil {
				metrics.BenchTrialsTotal.WithLabelValues("failed").Inc()
				return fmt.Errorf("trial %d: %w", t, err)
			}
			metrics.BenchTrialsTotal.WithLabelValues("ok").Inc()
			ops.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return benchResult{}, err
	}
	return benchResult{Ops: ops.Load(), Elapsed: time.Since(start)}, nil
}

// runTrial fills a queue of the given capacity with random keys, applies a
// round of updates and deletions, then drains it checking that keys come
// out in non-decreasing order. It returns the number of queue operations.
func runTrial(rng *rand.Rand, size int) (int64, error) {
	pq, err := indexpq.New[int](size)
	if err != nil {
		return 0, err
	}
	var ops int64

	for i := 0; i < size; i++ {
		if err := pq.Insert(i, rng.IntN(size*4)); err != nil {
			return ops, err
		}
		ops++
	}

	for j := 0; j < size/2; j++ {
		i := rng.IntN(size)
		ok, err := pq.Contains(i)
		if err != nil {
			return ops, err
		}
		if !ok {
			continue
		}
		switch rng.IntN(3) {
		case 0:
			err = pq.ChangeKey(i, rng.IntN(size*4))
		case 1:
			var cur int
			if cur, err = pq.KeyOf(i); err == nil && cur > 0 {
				err = pq.DecreaseKey(i, cur-1-rng.IntN(cur))
			}
		default:
			err = pq.Delete(i)
		}
		if err != nil {
			return ops, err
		}
		ops++
	}

	last := -1
	for !pq.IsEmpty() {
		key, err := pq.MinKey()
		if err != nil {
			return ops, err
		}
		if key < last {
			return ops, fmt.Errorf("extracted key %d after %d", key, last)
		}
		last = key
		if _, err := pq.DeleteMin(); err != nil {
			return ops, err
		}
		ops++
	}
	return ops, nil
}
