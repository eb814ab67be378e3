// Package spatialjoin implements the per-partition judgement core of a
// partitioned spatial join: one side of the input is materialized into a
// spatial index, the other side streams past it, envelope-level candidates
// are verified with an exact topological predicate, and matching pairs are
// delivered through a lazy, batched pull iterator.
//
// # Quick Start
//
//	j, _ := spatialjoin.New(true, index.TypeRTree, spatialjoin.BuildLeft)
//	it := j.Join(geom.FromSlice(left), geom.FromSlice(right))
//	defer it.Close()
//	for pair := range it.All() {
//	    process(pair.Left, pair.Right)
//	}
//
// The iterator does no work at construction; the first HasNext or Next call
// pulls stream geometries until a batch of matches is found. Consumers may
// stop at any time.
//
// # Boundary Semantics
//
// The considerBoundaryIntersection flag passed to New selects the match
// predicate. true matches any shared point, including boundary-only contact;
// false requires the interiors to intersect, excluding pairs that merely
// touch (see geom.Relation for the pinned topological model).
//
// # Partitioned Use
//
// One Joiner invocation handles one partition and owns its index and
// iterator exclusively; invocations never share mutable state and may run
// concurrently. Runner executes a set of partitions on an errgroup, and the
// dedup package keeps matches that are visible in several overlapping
// partitions from being emitted more than once.
//
// # Key Features
//
//   - R-tree and quadtree index strategies behind one closed Type enum
//   - Exact DE-9IM style relation tests on points, rects and circles
//   - Bounded-cost batched iteration with inspectable state machine
//   - Reference-point deduplication for grid partitionings
//   - Structured logging (log/slog) and pluggable metrics collection
package spatialjoin
