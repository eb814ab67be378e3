package spatialjoin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spatialjoin/dedup"
	"github.com/hupe1980/spatialjoin/geom"
	"github.com/hupe1980/spatialjoin/index"
)

func TestRunnerDedupAcrossPartitions(t *testing.T) {
	// Both geometries straddle the shared edge of the two grid cells and
	// are therefore replicated into both partitions by the (simulated)
	// upstream partitioning.
	params := dedup.NewParams([]geom.Envelope{
		geom.NewEnvelope(0, 0, 10, 10),
		geom.NewEnvelope(10, 0, 20, 10),
	})
	l := geom.NewRect(8, 0, 12, 10)
	r := geom.NewRect(9, 2, 14, 8)

	replicated := Partition{
		Left:  []geom.Geometry{l},
		Right: []geom.Geometry{r},
	}

	runner, err := NewRunner(true, index.TypeRTree, BuildLeft,
		WithPartitionDedup(params),
		WithConcurrency(2),
	)
	require.NoError(t, err)

	pairs, err := runner.Run(context.Background(), []Partition{replicated, replicated})
	require.NoError(t, err)

	require.Len(t, pairs, 1, "each logical match is emitted exactly once")
	assert.Same(t, l, pairs[0].Left)
	assert.Same(t, r, pairs[0].Right)
}

func TestRunnerWithoutDedupKeepsDuplicates(t *testing.T) {
	l := geom.NewRect(0, 0, 10, 10)
	r := geom.NewPoint(5, 5)
	part := Partition{Left: []geom.Geometry{l}, Right: []geom.Geometry{r}}

	runner, err := NewRunner(true, index.TypeQuadTree, BuildRight)
	require.NoError(t, err)

	pairs, err := runner.Run(context.Background(), []Partition{part, part})
	require.NoError(t, err)

	assert.Len(t, pairs, 2)
}

func TestRunnerManyPartitions(t *testing.T) {
	var partitions []Partition
	want := 0
	for i := range 16 {
		offset := float64(i * 100)
		partitions = append(partitions, Partition{
			Left: []geom.Geometry{
				geom.NewRect(offset, 0, offset+10, 10),
			},
			Right: []geom.Geometry{
				geom.NewPoint(offset+5, 5),
				geom.NewPoint(offset+50, 50),
			},
		})
		want++
	}

	runner, err := NewRunner(true, index.TypeRTree, BuildLeft,
		WithConcurrency(4),
		WithJoinOptions(WithMetricsCollector(&BasicMetricsCollector{})),
	)
	require.NoError(t, err)

	pairs, err := runner.Run(context.Background(), partitions)
	require.NoError(t, err)
	assert.Len(t, pairs, want)
}

func TestRunnerConfigurationError(t *testing.T) {
	runner, err := NewRunner(true, index.Type(42), BuildLeft)
	require.Nil(t, runner)

	var unsupported *index.ErrUnsupportedType
	assert.ErrorAs(t, err, &unsupported)
}

func TestRunnerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner, err := NewRunner(true, index.TypeRTree, BuildLeft)
	require.NoError(t, err)

	part := Partition{
		Left:  []geom.Geometry{geom.NewRect(0, 0, 10, 10)},
		Right: []geom.Geometry{geom.NewPoint(5, 5)},
	}

	_, err = runner.Run(ctx, []Partition{part})
	assert.ErrorIs(t, err, context.Canceled)
}
