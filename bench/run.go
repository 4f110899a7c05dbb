package bench

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kocubinski/containers/fbtree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// TreeContext drives a generated workload against a full binary tree.
type TreeContext struct {
	Log       zerolog.Logger
	Generator OpGenerator

	// CheckInterval verifies the fullness invariant every N ops; 0 disables
	// the check.
	CheckInterval int

	// ReportInterval controls progress logging; 0 means every 100k ops.
	ReportInterval int

	MetricOpCount  prometheus.Counter
	MetricTreeSize prometheus.Gauge
}

// Run replays the workload. It fails if the generator configuration is
// invalid or the tree ever violates the fullness invariant.
func (c *TreeContext) Run(tree *fbtree.Tree[int64]) error {
	itr, err := c.Generator.Iterator()
	if err != nil {
		return err
	}

	report := c.ReportInterval
	if report == 0 {
		report = 100_000
	}

	cnt := 1
	since := time.Now()
	for ; itr.Valid(); err = itr.Next() {
		if err != nil {
			return err
		}
		op := itr.Op()
		switch op.Type {
		case OpInsert:
			tree.Insert(op.Value)
		case OpRemove:
			tree.Remove(op.Value)
		case OpFind:
			tree.Contains(op.Value)
		default:
			return fmt.Errorf("unknown op type %d", op.Type)
		}

		if c.MetricOpCount != nil {
			c.MetricOpCount.Inc()
		}

		if cnt%report == 0 {
			c.Log.Info().Msgf("processed %s ops in %s; %s ops/s; tree size %s",
				humanize.Comma(int64(cnt)),
				time.Since(since),
				humanize.Comma(int64(float64(report)/time.Since(since).Seconds())),
				humanize.Comma(int64(tree.Size())))
			since = time.Now()
		}

		if c.CheckInterval > 0 && cnt%c.CheckInterval == 0 {
			if !tree.IsFull() {
				return fmt.Errorf("fullness invariant violated after %d ops", cnt)
			}
		}
		cnt++
	}

	if c.MetricTreeSize != nil {
		c.MetricTreeSize.Set(float64(tree.Size()))
	}
	return nil
}
