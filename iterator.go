package spatialjoin

import (
	"iter"
	"time"

	"github.com/hupe1980/spatialjoin/dedup"
	"github.com/hupe1980/spatialjoin/geom"
	"github.com/hupe1980/spatialjoin/index"
)

// streamMilestone is the stream-shape interval for progress logging.
const streamMilestone = 100 * 1000

// IteratorState identifies the phase of a PairIterator's batch state
// machine.
type IteratorState int

const (
	// StateEmpty means no batch is buffered and the stream side is not yet
	// known to be exhausted. Transient: the next HasNext or Next call
	// attempts to populate a batch.
	StateEmpty IteratorState = iota

	// StateReady means a non-empty batch is buffered and a cursor points
	// at the next pair to yield.
	StateReady

	// StateExhausted means the stream side is fully drained; no further
	// work is possible.
	StateExhausted
)

// String returns a string representation of the IteratorState.
func (s IteratorState) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateReady:
		return "Ready"
	case StateExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// PairIterator streams the matches of one join invocation.
//
// It is pull-based and lazy: construction performs no work, and each batch
// population consumes just enough of the stream side to buffer at least one
// match. Batching bounds the cost of a single call while amortizing scans
// over stream regions that produce no candidates.
//
// The iterator is read-only and not safe for concurrent use.
type PairIterator struct {
	idx       index.SpatialIndex
	buildLeft bool
	match     matchFunc
	oracle    dedup.Oracle
	logger    *Logger
	metrics   MetricsCollector

	streamNext func() (geom.Geometry, bool)
	streamStop func()

	// peeked holds the stream element consumed by the emptiness probe in
	// Join; it is replayed before the pull sequence proper.
	peeked    geom.Geometry
	hasPeeked bool

	batch      []Pair
	cursor     int
	exhausted  bool
	closed     bool
	shapeCount int64
}

func newPairIterator(j *Joiner, idx index.SpatialIndex, buildLeft bool, first geom.Geometry, next func() (geom.Geometry, bool), stop func()) *PairIterator {
	return &PairIterator{
		idx:        idx,
		buildLeft:  buildLeft,
		match:      j.match,
		oracle:     j.oracle,
		logger:     j.logger,
		metrics:    j.metrics,
		streamNext: next,
		streamStop: stop,
		peeked:     first,
		hasPeeked:  true,
	}
}

func newExhaustedIterator(j *Joiner) *PairIterator {
	return &PairIterator{
		match:     j.match,
		oracle:    j.oracle,
		logger:    j.logger,
		metrics:   j.metrics,
		exhausted: true,
		closed:    true,
	}
}

// State returns the current state of the batch state machine.
func (it *PairIterator) State() IteratorState {
	switch {
	case it.exhausted:
		return StateExhausted
	case it.batch != nil:
		return StateReady
	default:
		return StateEmpty
	}
}

// HasNext reports whether another pair is available, populating the next
// batch if none is buffered. Once it returns false it keeps returning
// false.
func (it *PairIterator) HasNext() bool {
	if it.batch != nil {
		return true
	}
	if it.exhausted {
		return false
	}
	return it.populateNextBatch()
}

// Next returns the next (left, right) pair. After the stream side is
// drained it returns ErrIteratorExhausted, on this and every later call.
func (it *PairIterator) Next() (Pair, error) {
	if it.batch == nil {
		if it.exhausted || !it.populateNextBatch() {
			return Pair{}, ErrIteratorExhausted
		}
	}

	pair := it.batch[it.cursor]
	it.cursor++
	if it.cursor >= len(it.batch) {
		// Refill eagerly so the following HasNext is a buffered check.
		it.populateNextBatch()
	}

	return pair, nil
}

// All returns a range-over-func view of the remaining pairs. The iterator
// is closed when the loop finishes or breaks early.
func (it *PairIterator) All() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		defer it.Close()
		for it.HasNext() {
			pair, err := it.Next()
			if err != nil {
				return
			}
			if !yield(pair) {
				return
			}
		}
	}
}

// Close releases the pull coroutine backing the stream side. It is safe to
// call multiple times; iteration methods keep reporting exhaustion
// afterwards. Abandoning an iterator without calling Close leaves only
// memory for the garbage collector, matching normal end-of-lifetime
// reclamation.
func (it *PairIterator) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.hasPeeked = false
	it.peeked = nil
	if it.streamStop != nil {
		it.streamStop()
	}
}

// populateNextBatch advances the state machine: it pulls stream geometries,
// probes the index with their envelopes and verifies candidates until at
// least one pair is buffered or the stream drains. It reports whether a
// batch is now ready.
func (it *PairIterator) populateNextBatch() bool {
	start := time.Now()

	it.batch = nil
	it.cursor = 0

	streamed := 0
	var batch []Pair
	for {
		g, ok := it.nextStream()
		if !ok {
			it.exhausted = true
			it.Close()
			it.metrics.RecordBatch(streamed, 0, time.Since(start))
			return false
		}

		streamed++
		it.shapeCount++
		if it.shapeCount > 1 && it.shapeCount%streamMilestone == 1 {
			it.logger.LogMilestone("streaming shapes", it.shapeCount)
		}

		for _, candidate := range it.idx.Query(g.Envelope()) {
			var pair Pair
			if it.buildLeft {
				pair = Pair{Left: candidate, Right: g}
			} else {
				pair = Pair{Left: g, Right: candidate}
			}
			if !it.match(pair.Left, pair.Right) {
				continue
			}
			if it.oracle != nil && !it.oracle.IsCanonicalOwner(pair.Left, pair.Right) {
				continue
			}
			batch = append(batch, pair)
		}

		if len(batch) > 0 {
			it.batch = batch
			it.metrics.RecordBatch(streamed, len(batch), time.Since(start))
			return true
		}
	}
}

func (it *PairIterator) nextStream() (geom.Geometry, bool) {
	if it.hasPeeked {
		g := it.peeked
		it.hasPeeked = false
		it.peeked = nil
		return g, true
	}
	if it.closed || it.streamNext == nil {
		return nil, false
	}
	return it.streamNext()
}
