// Package dedup suppresses duplicate matches across overlapping spatial
// partitions.
//
// A grid partitioning that replicates geometries into every cell they touch
// makes a single logical match visible in several partitions. Each partition
// therefore asks an Oracle whether it is the canonical owner of a match and
// drops the pair otherwise, so the combined output across partitions
// contains every logical match exactly once.
package dedup

import "github.com/hupe1980/spatialjoin/geom"

// Oracle decides whether the current partition owns a given match.
type Oracle interface {
	// IsCanonicalOwner reports whether the (left, right) match must be
	// emitted by the partition this oracle was created for.
	IsCanonicalOwner(left, right geom.Geometry) bool
}

// Params carries the grid partition extents needed to resolve canonical
// ownership. It is read-only after construction and may be shared across
// concurrently running partitions.
type Params struct {
	extents []geom.Envelope
}

// NewParams returns dedup parameters for a grid whose cell extents are
// indexed by partition id.
func NewParams(partitionExtents []geom.Envelope) *Params {
	extents := make([]geom.Envelope, len(partitionExtents))
	copy(extents, partitionExtents)
	return &Params{extents: extents}
}

// OracleFor returns the ownership oracle for the given partition.
//
// Partitions without a grid extent (the overflow partition collecting
// geometries outside the grid) own every match routed to them: those
// geometries are never replicated, so no duplicates can arise.
func (p *Params) OracleFor(partitionID int) Oracle {
	if p == nil || partitionID < 0 || partitionID >= len(p.extents) {
		return ownAll{}
	}
	return &referencePointOracle{extent: newHalfOpenRect(p.extents[partitionID])}
}

type ownAll struct{}

func (ownAll) IsCanonicalOwner(geom.Geometry, geom.Geometry) bool { return true }

// referencePointOracle implements the reference-point rule: the canonical
// owner of a match is the partition whose extent contains the bottom-left
// corner of the intersection of the two envelopes.
type referencePointOracle struct {
	extent halfOpenRect
}

// IsCanonicalOwner implements Oracle.
func (o *referencePointOracle) IsCanonicalOwner(left, right geom.Geometry) bool {
	overlap, ok := left.Envelope().Intersection(right.Envelope())
	if !ok {
		// Candidate envelopes always overlap; a disjoint pair reached us
		// through some other route and belongs to no grid cell.
		return false
	}
	return o.extent.contains(overlap.MinX, overlap.MinY)
}

// halfOpenRect treats min edges as inclusive and max edges as exclusive, so
// adjacent grid cells sharing an edge cannot both claim a reference point.
type halfOpenRect struct {
	minX, minY float64
	maxX, maxY float64
}

func newHalfOpenRect(env geom.Envelope) halfOpenRect {
	return halfOpenRect{minX: env.MinX, minY: env.MinY, maxX: env.MaxX, maxY: env.MaxY}
}

func (r halfOpenRect) contains(x, y float64) bool {
	return x >= r.minX && x < r.maxX && y >= r.minY && y < r.maxY
}
