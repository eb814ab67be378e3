package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spatialjoin/geom"
)

func TestTypeValid(t *testing.T) {
	assert.True(t, TypeRTree.Valid())
	assert.True(t, TypeQuadTree.Valid())
	assert.False(t, Type(42).Valid())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "RTree", TypeRTree.String())
	assert.Equal(t, "QuadTree", TypeQuadTree.String())
	assert.Equal(t, "Unknown", Type(42).String())
}

func TestNewUnsupportedType(t *testing.T) {
	idx, err := New(Type(42))
	require.Nil(t, idx)

	var unsupported *ErrUnsupportedType
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, Type(42), unsupported.Type)
}

func TestStrategies(t *testing.T) {
	for _, typ := range []Type{TypeRTree, TypeQuadTree} {
		t.Run(typ.String(), func(t *testing.T) {
			t.Run("EmptyQuery", func(t *testing.T) {
				idx, err := New(typ)
				require.NoError(t, err)

				assert.Empty(t, idx.Query(geom.NewEnvelope(0, 0, 100, 100)))
			})

			t.Run("ConservativeSuperset", func(t *testing.T) {
				idx, err := New(typ)
				require.NoError(t, err)

				entries := []geom.Geometry{
					geom.NewRect(0, 0, 10, 10),
					geom.NewRect(20, 20, 30, 30),
					geom.NewRect(5, 5, 25, 25),
					geom.NewPoint(5, 5),
					geom.NewPoint(50, 50),
					geom.NewCircle(40, 5, 3),
				}
				for _, g := range entries {
					idx.Insert(g.Envelope(), g)
				}

				probe := geom.NewEnvelope(4, 4, 6, 6)
				candidates := idx.Query(probe)

				// Every entry whose envelope truly intersects the probe
				// must be a candidate; false positives are allowed.
				for _, g := range entries {
					if g.Envelope().Intersects(probe) {
						assert.Contains(t, candidates, g)
					}
				}
			})

			t.Run("TouchingEnvelopeProbe", func(t *testing.T) {
				idx, err := New(typ)
				require.NoError(t, err)

				a := geom.NewRect(0, 0, 10, 10)
				idx.Insert(a.Envelope(), a)

				// Boundary contact must still surface candidates: a
				// missed touching envelope is a false negative, not a
				// prunable case.
				onEdge := geom.NewPoint(10, 5)
				assert.Contains(t, idx.Query(onEdge.Envelope()), geom.Geometry(a))

				sharedEdge := geom.NewRect(10, 0, 20, 10)
				assert.Contains(t, idx.Query(sharedEdge.Envelope()), geom.Geometry(a))

				corner := geom.NewRect(10, 10, 20, 20)
				assert.Contains(t, idx.Query(corner.Envelope()), geom.Geometry(a))
			})

			t.Run("DegeneratePointProbe", func(t *testing.T) {
				idx, err := New(typ)
				require.NoError(t, err)

				p := geom.NewPoint(7, 7)
				idx.Insert(p.Envelope(), p)

				candidates := idx.Query(geom.NewPoint(7, 7).Envelope())
				assert.Contains(t, candidates, p)
			})

			t.Run("DuplicateEnvelopes", func(t *testing.T) {
				idx, err := New(typ)
				require.NoError(t, err)

				a := geom.NewRect(0, 0, 10, 10)
				b := geom.NewRect(0, 0, 10, 10)
				idx.Insert(a.Envelope(), a)
				idx.Insert(b.Envelope(), b)

				candidates := idx.Query(geom.NewEnvelope(1, 1, 2, 2))
				assert.Contains(t, candidates, geom.Geometry(a))
				assert.Contains(t, candidates, geom.Geometry(b))
			})
		})
	}
}

func TestQuadTreeDeferredBuild(t *testing.T) {
	qt := newQuadTree()

	// More entries than one node holds, forcing splits, including
	// envelopes straddling the midlines that stay on inner nodes.
	var entries []geom.Geometry
	for i := range 32 {
		x := float64(i % 8 * 10)
		y := float64(i / 8 * 10)
		r := geom.NewRect(x, y, x+8, y+8)
		entries = append(entries, r)
		qt.Insert(r.Envelope(), r)
	}
	straddler := geom.NewRect(0, 0, 70, 38)
	qt.Insert(straddler.Envelope(), straddler)

	require.True(t, qt.dirty)
	require.Nil(t, qt.root)

	probe := geom.NewEnvelope(0, 0, 15, 15)
	candidates := qt.Query(probe)

	assert.False(t, qt.dirty, "first query finalizes the structure")
	require.NotNil(t, qt.root)

	for _, g := range entries {
		if g.Envelope().Intersects(probe) {
			assert.Contains(t, candidates, g)
		}
	}
	assert.Contains(t, candidates, geom.Geometry(straddler))

	// Repeated queries hit the already built structure.
	again := qt.Query(probe)
	assert.ElementsMatch(t, candidates, again)
}
