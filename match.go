package spatialjoin

import "github.com/hupe1980/spatialjoin/geom"

// matchFunc is the exact predicate applied to envelope-level candidates.
// Arguments are always in (left, right) role order.
type matchFunc func(left, right geom.Geometry) bool

// newMatchFunc resolves the boundary flag into a predicate.
//
// considerBoundaryIntersection=true matches any shared point, including
// boundary-only contact. false requires the interiors to intersect, so
// pairs that merely touch are excluded while partial overlap and
// containment still match.
func newMatchFunc(considerBoundaryIntersection bool) matchFunc {
	if considerBoundaryIntersection {
		return func(left, right geom.Geometry) bool {
			return left.Relate(right) != geom.Disjoint
		}
	}
	return func(left, right geom.Geometry) bool {
		return left.Relate(right) == geom.InteriorIntersects
	}
}
