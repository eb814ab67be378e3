package index

import (
	"github.com/dhconnelly/rtreego"

	"github.com/hupe1980/spatialjoin/geom"
)

// Node fan-out for the backing rtreego tree.
const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
)

// rtreego requires strictly positive extents and its intersection test is
// strict, so point geometries produce degenerate envelopes and touching
// envelopes would be missed. Inflating every envelope by epsilon turns
// boundary contact into strict overlap and keeps the no-false-negative
// contract intact; the extra false positives are filtered by the exact
// predicate like any other candidate.
const rtreeEpsilon = 1e-9

var _ SpatialIndex = (*rtree)(nil)

type rtreeEntry struct {
	rect     rtreego.Rect
	geometry geom.Geometry
}

// Bounds implements rtreego.Spatial.
func (e *rtreeEntry) Bounds() rtreego.Rect { return e.rect }

// rtree is the TypeRTree strategy, a thin adapter over
// github.com/dhconnelly/rtreego.
type rtree struct {
	tree *rtreego.Rtree
}

func newRTree() *rtree {
	return &rtree{tree: rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren)}
}

// Insert implements SpatialIndex.
func (r *rtree) Insert(env geom.Envelope, g geom.Geometry) {
	r.tree.Insert(&rtreeEntry{rect: toRect(env), geometry: g})
}

// Query implements SpatialIndex.
func (r *rtree) Query(env geom.Envelope) []geom.Geometry {
	hits := r.tree.SearchIntersect(toRect(env))
	if len(hits) == 0 {
		return nil
	}
	out := make([]geom.Geometry, 0, len(hits))
	for _, hit := range hits {
		out = append(out, hit.(*rtreeEntry).geometry)
	}
	return out
}

func toRect(env geom.Envelope) rtreego.Rect {
	lengths := []float64{
		env.Width() + rtreeEpsilon,
		env.Height() + rtreeEpsilon,
	}
	rect, err := rtreego.NewRect(rtreego.Point{env.MinX, env.MinY}, lengths)
	if err != nil {
		// Only reachable with NaN coordinates; the core performs no
		// recovery, the invoking layer retries whole invocations.
		panic(err)
	}
	return rect
}
