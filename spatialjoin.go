package spatialjoin

import (
	"iter"
	"time"

	"github.com/hupe1980/spatialjoin/dedup"
	"github.com/hupe1980/spatialjoin/geom"
	"github.com/hupe1980/spatialjoin/index"
)

// BuildSide selects which input collection is materialized into the spatial
// index. The other collection streams past the index one geometry at a time.
type BuildSide int

// Constants representing the two build side choices.
const (
	BuildLeft BuildSide = iota
	BuildRight
)

// String returns a string representation of the BuildSide.
func (s BuildSide) String() string {
	switch s {
	case BuildLeft:
		return "BuildLeft"
	case BuildRight:
		return "BuildRight"
	default:
		return "Unknown"
	}
}

// Pair is a single join match. Left and Right reference the original input
// geometries and always keep their input roles, regardless of which side
// was indexed.
type Pair struct {
	Left  geom.Geometry
	Right geom.Geometry
}

// Joiner holds the configuration of a join. It is read-only after New and
// may be shared across concurrently running invocations; each Join call
// owns its index and iterator exclusively.
type Joiner struct {
	indexType index.Type
	buildSide BuildSide
	match     matchFunc
	oracle    dedup.Oracle
	logger    *Logger
	metrics   MetricsCollector
}

// New creates a Joiner.
//
// considerBoundaryIntersection selects the match predicate (whether
// boundary-only contact counts as a match), indexType the index strategy
// and buildSide the collection to materialize. Configuration is validated
// here, before any input is consumed: an unrecognized index type or build
// side is a non-retryable configuration error.
func New(considerBoundaryIntersection bool, indexType index.Type, buildSide BuildSide, optFns ...Option) (*Joiner, error) {
	if !indexType.Valid() {
		return nil, &index.ErrUnsupportedType{Type: indexType}
	}
	if buildSide != BuildLeft && buildSide != BuildRight {
		return nil, &ErrInvalidBuildSide{Side: buildSide}
	}

	o := applyOptions(optFns)

	return &Joiner{
		indexType: indexType,
		buildSide: buildSide,
		match:     newMatchFunc(considerBoundaryIntersection),
		oracle:    o.oracle,
		logger:    o.logger,
		metrics:   o.metrics,
	}, nil
}

// Join runs one invocation over the two input sequences and returns the
// iterator over matching (left, right) pairs.
//
// The build side is drained eagerly into a fresh index; the stream side is
// consumed lazily as the iterator is pulled. If either sequence is empty
// the join short-circuits to an exhausted iterator without building an
// index or touching the other sequence.
func (j *Joiner) Join(left, right geom.Seq) *PairIterator {
	leftNext, leftStop := iter.Pull(left)
	firstLeft, ok := leftNext()
	if !ok {
		leftStop()
		return newExhaustedIterator(j)
	}

	rightNext, rightStop := iter.Pull(right)
	firstRight, ok := rightNext()
	if !ok {
		rightStop()
		leftStop()
		return newExhaustedIterator(j)
	}

	buildLeft := j.buildSide == BuildLeft

	var buildFirst, streamFirst geom.Geometry
	var buildNext, streamNext func() (geom.Geometry, bool)
	var buildStop, streamStop func()
	if buildLeft {
		buildFirst, buildNext, buildStop = firstLeft, leftNext, leftStop
		streamFirst, streamNext, streamStop = firstRight, rightNext, rightStop
	} else {
		buildFirst, buildNext, buildStop = firstRight, rightNext, rightStop
		streamFirst, streamNext, streamStop = firstLeft, leftNext, leftStop
	}

	idx := j.buildIndex(buildFirst, buildNext)
	buildStop()

	return newPairIterator(j, idx, buildLeft, streamFirst, streamNext, streamStop)
}

// buildIndex drains the build side into a fresh index. Eager by design:
// bounding one side's memory lets the other side stream with O(1) amortized
// lookups.
func (j *Joiner) buildIndex(first geom.Geometry, next func() (geom.Geometry, bool)) index.SpatialIndex {
	start := time.Now()

	idx, err := index.New(j.indexType)
	if err != nil {
		// The type was validated in New; only reachable through a
		// hand-rolled Joiner value.
		panic(err)
	}

	count := 0
	for g, ok := first, true; ok; g, ok = next() {
		idx.Insert(g.Envelope(), g)
		count++
	}

	// Some strategies defer structural build cost to the first query; pay
	// it here, outside the probe loop.
	idx.Query(geom.Envelope{})

	j.metrics.RecordBuild(count, time.Since(start))
	j.logger.LogBuild(j.indexType.String(), count, time.Since(start))

	return idx
}
