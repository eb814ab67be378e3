package geom

// Compile-time checks that the built-in shapes satisfy Geometry.
var _ Geometry = (*Point)(nil)
var _ Geometry = (*Rect)(nil)
var _ Geometry = (*Circle)(nil)

// Point is a single location. Its DE-9IM interior is the point itself and
// its boundary is empty, so two equal points have intersecting interiors
// while a point on a Rect outline merely touches it.
type Point struct {
	X, Y float64
}

// NewPoint returns a point at (x, y).
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// Envelope implements Geometry.
func (p *Point) Envelope() Envelope {
	return Envelope{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// Relate implements Geometry.
func (p *Point) Relate(other Geometry) Relation {
	switch o := other.(type) {
	case *Point:
		if p.X == o.X && p.Y == o.Y {
			return InteriorIntersects
		}
		return Disjoint
	case *Rect:
		return relatePointRect(p, o)
	case *Circle:
		return relatePointCircle(p, o)
	default:
		// Relations are symmetric; let the unknown side classify.
		return other.Relate(p)
	}
}

// Rect is an axis-aligned rectangle with positive extent on both axes.
// Use Point for degenerate shapes; a zero-area Rect misreports interior
// relations.
type Rect struct {
	env Envelope
}

// NewRect returns the rectangle spanning the two corner points, in any order.
func NewRect(x1, y1, x2, y2 float64) *Rect {
	return &Rect{env: NewEnvelope(x1, y1, x2, y2)}
}

// Envelope implements Geometry.
func (r *Rect) Envelope() Envelope { return r.env }

// Relate implements Geometry.
func (r *Rect) Relate(other Geometry) Relation {
	switch o := other.(type) {
	case *Point:
		return relatePointRect(o, r)
	case *Rect:
		return relateRectRect(r, o)
	case *Circle:
		return relateRectCircle(r, o)
	default:
		return other.Relate(r)
	}
}

// Circle is a closed disc with positive radius.
type Circle struct {
	X, Y   float64
	Radius float64
}

// NewCircle returns the disc centered at (x, y) with radius r.
func NewCircle(x, y, r float64) *Circle {
	return &Circle{X: x, Y: y, Radius: r}
}

// Envelope implements Geometry.
func (c *Circle) Envelope() Envelope {
	return Envelope{
		MinX: c.X - c.Radius,
		MinY: c.Y - c.Radius,
		MaxX: c.X + c.Radius,
		MaxY: c.Y + c.Radius,
	}
}

// Relate implements Geometry.
func (c *Circle) Relate(other Geometry) Relation {
	switch o := other.(type) {
	case *Point:
		return relatePointCircle(o, c)
	case *Rect:
		return relateRectCircle(o, c)
	case *Circle:
		return relateCircleCircle(c, o)
	default:
		return other.Relate(c)
	}
}

func relatePointRect(p *Point, r *Rect) Relation {
	e := r.env
	if p.X < e.MinX || p.X > e.MaxX || p.Y < e.MinY || p.Y > e.MaxY {
		return Disjoint
	}
	if p.X > e.MinX && p.X < e.MaxX && p.Y > e.MinY && p.Y < e.MaxY {
		return InteriorIntersects
	}
	return Touches
}

func relatePointCircle(p *Point, c *Circle) Relation {
	d2 := sqDist(p.X, p.Y, c.X, c.Y)
	r2 := c.Radius * c.Radius
	switch {
	case d2 > r2:
		return Disjoint
	case d2 < r2:
		return InteriorIntersects
	default:
		return Touches
	}
}

func relateRectRect(a, b *Rect) Relation {
	ox := min(a.env.MaxX, b.env.MaxX) - max(a.env.MinX, b.env.MinX)
	oy := min(a.env.MaxY, b.env.MaxY) - max(a.env.MinY, b.env.MinY)
	switch {
	case ox < 0 || oy < 0:
		return Disjoint
	case ox > 0 && oy > 0:
		return InteriorIntersects
	default:
		// Zero-width overlap on at least one axis: shared edge or corner.
		return Touches
	}
}

func relateRectCircle(r *Rect, c *Circle) Relation {
	// Distance from the center to the nearest point of the closed rect.
	nx := min(max(c.X, r.env.MinX), r.env.MaxX)
	ny := min(max(c.Y, r.env.MinY), r.env.MaxY)
	d2 := sqDist(nx, ny, c.X, c.Y)
	r2 := c.Radius * c.Radius
	switch {
	case d2 > r2:
		return Disjoint
	case d2 == r2:
		return Touches
	default:
		// The disc reaches strictly past a point of the closed rect, so
		// it also covers nearby interior points of the rect.
		return InteriorIntersects
	}
}

func relateCircleCircle(a, b *Circle) Relation {
	d2 := sqDist(a.X, a.Y, b.X, b.Y)
	sum := a.Radius + b.Radius
	switch {
	case d2 > sum*sum:
		return Disjoint
	case d2 == sum*sum:
		return Touches
	default:
		return InteriorIntersects
	}
}

func sqDist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}
