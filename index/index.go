// Package index provides the spatial index strategies used to prune
// candidate pairs during a join.
//
// An index is a pruning structure, not ground truth: Query returns a
// conservative superset of the entries whose geometry truly intersects the
// probe envelope. Callers must re-verify every candidate with an exact
// predicate.
package index

import (
	"fmt"

	"github.com/hupe1980/spatialjoin/geom"
)

// Type selects a spatial index strategy.
type Type int

// Constants representing the supported index strategies.
const (
	TypeRTree Type = iota
	TypeQuadTree
)

// String returns a string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeRTree:
		return "RTree"
	case TypeQuadTree:
		return "QuadTree"
	default:
		return "Unknown"
	}
}

// Valid reports whether t names a supported strategy.
func (t Type) Valid() bool {
	return t == TypeRTree || t == TypeQuadTree
}

// ErrUnsupportedType is a named error type for unrecognized index types.
type ErrUnsupportedType struct {
	Type Type
}

// Error returns the error message for an unrecognized index type.
func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported index type: %d", int(e.Type))
}

// SpatialIndex is the abstract capability the join core relies on.
//
// Implementations are not safe for concurrent use; the join core builds and
// probes an index from a single goroutine.
type SpatialIndex interface {
	// Insert adds a geometry under its precomputed envelope.
	Insert(env geom.Envelope, g geom.Geometry)

	// Query returns the geometries whose stored envelope may intersect env:
	// no false negatives, false positives allowed.
	Query(env geom.Envelope) []geom.Geometry
}

// New resolves t into a fresh, empty index. It returns ErrUnsupportedType
// for unrecognized types; extending the set of strategies adds a case here,
// never at call sites.
func New(t Type) (SpatialIndex, error) {
	switch t {
	case TypeRTree:
		return newRTree(), nil
	case TypeQuadTree:
		return newQuadTree(), nil
	default:
		return nil, &ErrUnsupportedType{Type: t}
	}
}
