package spatialjoin

import (
	"context"
	"runtime"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/spatialjoin/dedup"
	"github.com/hupe1980/spatialjoin/geom"
	"github.com/hupe1980/spatialjoin/index"
)

// Partition is one co-located slice of the two input collections. Upstream
// partitioning is responsible for making every true match visible within a
// single partition.
type Partition struct {
	Left  []geom.Geometry
	Right []geom.Geometry
}

type runnerOptions struct {
	concurrency int
	params      *dedup.Params
	joinOpts    []Option
}

// RunnerOption configures a Runner.
type RunnerOption func(*runnerOptions)

// WithConcurrency limits how many partitions run at the same time.
// Defaults to GOMAXPROCS.
func WithConcurrency(n int) RunnerOption {
	return func(o *runnerOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithPartitionDedup enables reference-point deduplication: each partition
// receives the oracle for its own grid extent, so matches visible in
// several partitions are emitted exactly once across the whole run.
func WithPartitionDedup(params *dedup.Params) RunnerOption {
	return func(o *runnerOptions) {
		o.params = params
	}
}

// WithJoinOptions forwards ambient options (logger, metrics) to every
// per-partition Joiner.
func WithJoinOptions(optFns ...Option) RunnerOption {
	return func(o *runnerOptions) {
		o.joinOpts = append(o.joinOpts, optFns...)
	}
}

// Runner executes one join invocation per partition on a bounded errgroup
// and merges the output. It is a single-process orchestration harness: the
// join core itself stays per-partition and single-threaded, and partitions
// share no mutable state.
type Runner struct {
	considerBoundaryIntersection bool
	indexType                    index.Type
	buildSide                    BuildSide
	opts                         runnerOptions
}

// NewRunner creates a Runner. Configuration errors surface here, before
// any partition is touched.
func NewRunner(considerBoundaryIntersection bool, indexType index.Type, buildSide BuildSide, optFns ...RunnerOption) (*Runner, error) {
	// Reuse the Joiner validation so a bad config fails fast.
	if _, err := New(considerBoundaryIntersection, indexType, buildSide); err != nil {
		return nil, err
	}

	o := runnerOptions{
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	// Clip so per-partition appends never share a backing array.
	o.joinOpts = slices.Clip(o.joinOpts)

	return &Runner{
		considerBoundaryIntersection: considerBoundaryIntersection,
		indexType:                    indexType,
		buildSide:                    buildSide,
		opts:                         o,
	}, nil
}

// Run joins every partition and returns the flattened pairs. The slice
// index of a partition is its partition id, matching the extent indexing of
// dedup.Params. Cancelling the context stops partitions that have not
// started yet.
func (r *Runner) Run(ctx context.Context, partitions []Partition) ([]Pair, error) {
	results := make([][]Pair, len(partitions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.concurrency)

	for i, part := range partitions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			optFns := r.opts.joinOpts
			if r.opts.params != nil {
				optFns = append(optFns, WithDedupParams(r.opts.params, i))
			}

			j, err := New(r.considerBoundaryIntersection, r.indexType, r.buildSide, optFns...)
			if err != nil {
				return err
			}

			it := j.Join(geom.FromSlice(part.Left), geom.FromSlice(part.Right))
			for pair := range it.All() {
				results[i] = append(results[i], pair)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return lo.Flatten(results), nil
}
