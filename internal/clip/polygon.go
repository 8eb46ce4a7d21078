package clip

import "math"

// rectSnapEpsilon is the largest coordinate mismatch tolerated when
// recognizing an axis-aligned rectangle contour.
const rectSnapEpsilon = 1e-9

// Polygon is a set of closed flattened contours interpreted under a fill
// rule. A Polygon never changes after construction.
type Polygon struct {
	contours [][]Point
	rule     FillRule
	bounds   Rect
}

// NewPolygon flattens path elements into a polygon.
func NewPolygon(elements []PathElement, rule FillRule, tolerance float64) *Polygon {
	return PolygonFromContours(rule, Flatten(elements, tolerance)...)
}

// PolygonFromContours builds a polygon from already flat contours. The
// contours are copied.
func PolygonFromContours(rule FillRule, contours ...[]Point) *Polygon {
	p := &Polygon{rule: rule}
	for _, c := range contours {
		c = dedupe(c)
		if len(c) < 3 {
			continue
		}
		cc := make([]Point, len(c))
		copy(cc, c)
		p.contours = append(p.contours, cc)
		p.bounds = p.bounds.Union(boundsOf(cc))
	}
	return p
}

// Contours returns the flattened contours. Callers must not modify them.
func (p *Polygon) Contours() [][]Point {
	return p.contours
}

// FillRule returns the rule used for membership.
func (p *Polygon) FillRule() FillRule {
	return p.rule
}

// Bounds returns the bounding box of all contours.
func (p *Polygon) Bounds() Rect {
	return p.bounds
}

// IsEmpty returns true if the polygon encloses no area.
func (p *Polygon) IsEmpty() bool {
	return len(p.contours) == 0 || p.bounds.IsEmpty()
}

// Winding returns the winding number of pt. Points on a right or bottom
// edge are outside, matching half-open rectangles.
func (p *Polygon) Winding(pt Point) int {
	var winding int
	for _, c := range p.contours {
		n := len(c)
		for i := 0; i < n; i++ {
			winding += lineWinding(c[i], c[(i+1)%n], pt)
		}
	}
	return winding
}

// Contains tests membership under the polygon's fill rule.
func (p *Polygon) Contains(pt Point) bool {
	if !p.bounds.Contains(pt) {
		return false
	}
	w := p.Winding(pt)
	if p.rule == EvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// Equal reports whether both polygons have identical contours and rule.
func (p *Polygon) Equal(q *Polygon) bool {
	if p == q {
		return true
	}
	if p == nil || q == nil || p.rule != q.rule || len(p.contours) != len(q.contours) {
		return false
	}
	for i := range p.contours {
		a, b := p.contours[i], q.contours[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// AsRect reports whether the polygon is a single axis-aligned rectangular
// contour and returns that rectangle.
func (p *Polygon) AsRect() (Rect, bool) {
	if len(p.contours) != 1 || len(p.contours[0]) != 4 {
		return Rect{}, false
	}
	c := p.contours[0]
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		dx := math.Abs(c[i].X - c[j].X)
		dy := math.Abs(c[i].Y - c[j].Y)
		if dx > rectSnapEpsilon && dy > rectSnapEpsilon {
			return Rect{}, false
		}
	}
	// Consecutive edges must alternate between horizontal and vertical.
	horizontal := math.Abs(c[0].Y-c[1].Y) <= rectSnapEpsilon
	for i := 1; i < 4; i++ {
		h := math.Abs(c[i].Y-c[(i+1)%4].Y) <= rectSnapEpsilon
		if h == horizontal {
			return Rect{}, false
		}
		horizontal = h
	}
	if p.bounds.IsEmpty() {
		return Rect{}, false
	}
	return p.bounds, true
}

// ContainsRect reports whether r lies entirely inside the polygon. Only a
// single convex contour is analyzed; any other polygon returns false.
func (p *Polygon) ContainsRect(r Rect) bool {
	if r.IsEmpty() || r.IsUnbounded() || len(p.contours) != 1 {
		return false
	}
	c := p.contours[0]
	sign := convexOrientation(c)
	if sign == 0 {
		return false
	}
	n := len(c)
	for _, corner := range r.Corners() {
		for i := 0; i < n; i++ {
			if isLeft(c[i], c[(i+1)%n], corner)*sign < 0 {
				return false
			}
		}
	}
	return true
}

// convexOrientation returns +1 or -1 for a convex contour according to its
// turning direction, and 0 if the contour is not convex.
func convexOrientation(c []Point) float64 {
	n := len(c)
	var sign float64
	for i := 0; i < n; i++ {
		a, b, d := c[i], c[(i+1)%n], c[(i+2)%n]
		cross := b.Sub(a).X*d.Sub(b).Y - b.Sub(a).Y*d.Sub(b).X
		if cross == 0 {
			continue
		}
		s := math.Copysign(1, cross)
		if sign == 0 {
			sign = s
		} else if s != sign {
			return 0
		}
	}
	return sign
}

// ClippedBounds returns a bounding box of the polygon's area inside r. The
// result is conservative: it may be larger than the exact bounds, never
// smaller.
func (p *Polygon) ClippedBounds(r Rect) Rect {
	box := p.bounds.Intersect(r)
	if box.IsEmpty() || r.IsUnbounded() {
		return box
	}

	var (
		found bool
		out   Rect
	)
	add := func(pt Point) {
		if !found {
			out = Rect{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y}
			found = true
			return
		}
		out.Left = math.Min(out.Left, pt.X)
		out.Top = math.Min(out.Top, pt.Y)
		out.Right = math.Max(out.Right, pt.X)
		out.Bottom = math.Max(out.Bottom, pt.Y)
	}

	ec := NewEdgeClipper(box)
	for _, c := range p.contours {
		ec.ClipContour(c, add)
	}
	for _, corner := range box.Corners() {
		if p.Winding(corner) != 0 {
			add(corner)
		}
	}
	if !found {
		return Rect{}
	}
	return out.Intersect(box)
}
