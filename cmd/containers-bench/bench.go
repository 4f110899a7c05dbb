package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kocubinski/containers/bench"
	"github.com/kocubinski/containers/fbtree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func benchCommand() *cobra.Command {
	gen := bench.OpGenerator{}
	var checkInterval int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a generated workload against the full binary tree",
		RunE: func(_ *cobra.Command, _ []string) error {
			opCount := prometheus.NewCounter(prometheus.CounterOpts{
				Name: "containers_bench_op_count",
				Help: "Operations applied to the tree.",
			})
			treeSize := prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "containers_bench_tree_size",
				Help: "Node count of the tree after the run.",
			})
			prometheus.MustRegister(opCount, treeSize)

			ctx := &bench.TreeContext{
				Log:            log,
				Generator:      gen,
				CheckInterval:  checkInterval,
				MetricOpCount:  opCount,
				MetricTreeSize: treeSize,
			}

			tree := fbtree.New[int64]()
			since := time.Now()
			if err := ctx.Run(tree); err != nil {
				return err
			}
			log.Info().Msgf("done; %s ops in %s; final tree size %s; full=%t",
				humanize.Comma(int64(gen.Ops)),
				time.Since(since),
				humanize.Comma(int64(tree.Size())),
				tree.IsFull())
			return nil
		},
	}

	cmd.Flags().Int64Var(&gen.Seed, "seed", 0, "workload seed")
	cmd.Flags().IntVar(&gen.Ops, "ops", 1_000_000, "number of operations to run")
	cmd.Flags().Float64Var(&gen.InsertFraction, "insert-fraction", 0.5, "fraction of ops that insert")
	cmd.Flags().Float64Var(&gen.RemoveFraction, "remove-fraction", 0.25, "fraction of ops that remove; the rest are finds")
	cmd.Flags().Int64Var(&gen.ValueRange, "value-range", 10_000, "payload values are drawn from [0, value-range)")
	cmd.Flags().IntVar(&checkInterval, "check-interval", 0, "verify the fullness invariant every N ops (0 disables)")
	return cmd
}
