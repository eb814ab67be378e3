// Package geom provides the planar geometry primitives used by the join core:
// axis-aligned envelopes, an opaque Geometry abstraction, and exact
// topological relation tests.
//
// The relation model is pinned to DE-9IM interior/boundary conventions: the
// interior of a Point is the point itself (its boundary is empty), the
// interior of a Rect or Circle excludes its outline. Two geometries touch
// when they share points but none of those points lies in both interiors.
package geom

import (
	"iter"
	"slices"
)

// Relation classifies how two geometries relate topologically.
type Relation uint8

const (
	// Disjoint means the geometries share no point at all.
	Disjoint Relation = iota

	// Touches means the geometries share points, but only on their
	// boundaries (boundary-only contact).
	Touches

	// InteriorIntersects means the interiors share at least one point.
	// This covers partial overlap as well as containment.
	InteriorIntersects
)

// String returns a string representation of the Relation.
func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "Disjoint"
	case Touches:
		return "Touches"
	case InteriorIntersects:
		return "InteriorIntersects"
	default:
		return "Unknown"
	}
}

// Geometry is the opaque shape abstraction the join core operates on.
//
// Implementations must keep Relate symmetric: a.Relate(b) == b.Relate(a).
// Custom implementations must classify the built-in types (Point, Rect,
// Circle) themselves; the built-in types delegate to the unknown side when
// they encounter a type they do not recognize.
type Geometry interface {
	// Envelope returns the axis-aligned bounding box. It is used for
	// pruning only, never as ground truth.
	Envelope() Envelope

	// Relate computes the exact topological relation to other.
	Relate(other Geometry) Relation
}

// Seq is a pull-based sequence of geometries, the input form consumed by the
// join core.
type Seq = iter.Seq[Geometry]

// FromSlice returns a sequence over the given geometries in order.
func FromSlice(geometries []Geometry) Seq {
	return slices.Values(geometries)
}
