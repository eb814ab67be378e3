package geom

// Envelope is an axis-aligned bounding box. The zero value is the degenerate
// envelope at the origin.
type Envelope struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewEnvelope returns the envelope spanning the two corner points, in any
// order.
func NewEnvelope(x1, y1, x2, y2 float64) Envelope {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return Envelope{MinX: x1, MinY: y1, MaxX: x2, MaxY: y2}
}

// Width returns the extent on the x axis.
func (e Envelope) Width() float64 { return e.MaxX - e.MinX }

// Height returns the extent on the y axis.
func (e Envelope) Height() float64 { return e.MaxY - e.MinY }

// Intersects reports whether the two envelopes share at least one point.
// Touching edges count.
func (e Envelope) Intersects(o Envelope) bool {
	return e.MinX <= o.MaxX && o.MinX <= e.MaxX &&
		e.MinY <= o.MaxY && o.MinY <= e.MaxY
}

// Intersection returns the overlap of the two envelopes. ok is false when
// they are disjoint.
func (e Envelope) Intersection(o Envelope) (Envelope, bool) {
	if !e.Intersects(o) {
		return Envelope{}, false
	}
	return Envelope{
		MinX: max(e.MinX, o.MinX),
		MinY: max(e.MinY, o.MinY),
		MaxX: min(e.MaxX, o.MaxX),
		MaxY: min(e.MaxY, o.MaxY),
	}, true
}

// Union returns the smallest envelope covering both inputs.
func (e Envelope) Union(o Envelope) Envelope {
	return Envelope{
		MinX: min(e.MinX, o.MinX),
		MinY: min(e.MinY, o.MinY),
		MaxX: max(e.MaxX, o.MaxX),
		MaxY: max(e.MaxY, o.MaxY),
	}
}

// ContainsPoint reports whether (x, y) lies inside the closed envelope.
func (e Envelope) ContainsPoint(x, y float64) bool {
	return x >= e.MinX && x <= e.MaxX && y >= e.MinY && y <= e.MaxY
}
