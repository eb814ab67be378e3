package index

import "github.com/hupe1980/spatialjoin/geom"

const (
	quadNodeCapacity = 8
	quadMaxDepth     = 16
)

var _ SpatialIndex = (*quadTree)(nil)

type quadEntry struct {
	env      geom.Envelope
	geometry geom.Geometry
}

// quadTree is the TypeQuadTree strategy: an MX-CIF style quadtree that keeps
// each entry in the smallest quadrant fully covering its envelope.
//
// The root extent is only known once all entries are seen, so inserts are
// buffered and the structure is built on the first query. The join core's
// index builder issues one throwaway query after loading, which pays this
// cost once, outside the probe loop.
type quadTree struct {
	pending []quadEntry
	root    *quadNode
	dirty   bool
}

func newQuadTree() *quadTree {
	return &quadTree{}
}

// Insert implements SpatialIndex.
func (q *quadTree) Insert(env geom.Envelope, g geom.Geometry) {
	q.pending = append(q.pending, quadEntry{env: env, geometry: g})
	q.dirty = true
}

// Query implements SpatialIndex.
func (q *quadTree) Query(env geom.Envelope) []geom.Geometry {
	if q.dirty {
		q.build()
	}
	if q.root == nil {
		return nil
	}
	var out []geom.Geometry
	q.root.collect(env, &out)
	return out
}

func (q *quadTree) build() {
	q.dirty = false
	q.root = nil
	if len(q.pending) == 0 {
		return
	}
	extent := q.pending[0].env
	for _, e := range q.pending[1:] {
		extent = extent.Union(e.env)
	}
	q.root = &quadNode{bounds: extent}
	for _, e := range q.pending {
		q.root.insert(e, 0)
	}
}

type quadNode struct {
	bounds geom.Envelope
	// entries holds leaf items before a split and straddlers afterwards.
	entries  []quadEntry
	children []*quadNode
}

func (n *quadNode) insert(e quadEntry, depth int) {
	if n.children == nil {
		if len(n.entries) < quadNodeCapacity || depth >= quadMaxDepth {
			n.entries = append(n.entries, e)
			return
		}
		n.split(depth)
	}
	if child := n.childFor(e.env); child != nil {
		child.insert(e, depth+1)
		return
	}
	n.entries = append(n.entries, e)
}

func (n *quadNode) split(depth int) {
	midX := n.bounds.MinX + n.bounds.Width()/2
	midY := n.bounds.MinY + n.bounds.Height()/2
	n.children = []*quadNode{
		{bounds: geom.Envelope{MinX: n.bounds.MinX, MinY: n.bounds.MinY, MaxX: midX, MaxY: midY}},
		{bounds: geom.Envelope{MinX: midX, MinY: n.bounds.MinY, MaxX: n.bounds.MaxX, MaxY: midY}},
		{bounds: geom.Envelope{MinX: n.bounds.MinX, MinY: midY, MaxX: midX, MaxY: n.bounds.MaxY}},
		{bounds: geom.Envelope{MinX: midX, MinY: midY, MaxX: n.bounds.MaxX, MaxY: n.bounds.MaxY}},
	}

	retained := n.entries[:0]
	for _, e := range n.entries {
		if child := n.childFor(e.env); child != nil {
			child.insert(e, depth+1)
			continue
		}
		retained = append(retained, e)
	}
	n.entries = retained
}

// childFor returns the quadrant fully covering env, or nil for straddlers.
func (n *quadNode) childFor(env geom.Envelope) *quadNode {
	for _, child := range n.children {
		b := child.bounds
		if env.MinX >= b.MinX && env.MaxX <= b.MaxX &&
			env.MinY >= b.MinY && env.MaxY <= b.MaxY {
			return child
		}
	}
	return nil
}

func (n *quadNode) collect(query geom.Envelope, out *[]geom.Geometry) {
	if !n.bounds.Intersects(query) {
		return
	}
	for _, e := range n.entries {
		if e.env.Intersects(query) {
			*out = append(*out, e.geometry)
		}
	}
	for _, child := range n.children {
		child.collect(query, out)
	}
}
