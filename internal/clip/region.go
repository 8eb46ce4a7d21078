package clip

// Shape is an operand of region composition: either a Rect or a *Polygon,
// already in device coordinates.
type Shape interface {
	isShape()
}

func (Rect) isShape()     {}
func (*Polygon) isShape() {}

// Region is a set of points in the plane kept in the normal form
//
//	rects ∩ include[0] ∩ ... ∩ include[n-1] \ exclude[0] \ ... \ exclude[m-1]
//
// rects is exact; polygon operands are kept symbolically. A Region is an
// immutable value: every operation returns a new Region and shares
// unchanged slices with its input.
type Region struct {
	rects   RectSet
	include []*Polygon
	exclude []*Polygon
}

// EmptyRegion returns the region containing no points.
func EmptyRegion() Region {
	return Region{}
}

// FullRegion returns the region covering the whole plane.
func FullRegion() Region {
	return Region{rects: NewRectSet(Unbounded())}
}

// RectRegion returns the region covering r.
func RectRegion(r Rect) Region {
	return Region{rects: NewRectSet(r)}
}

// Rects returns the rectilinear part of the region.
func (g Region) Rects() RectSet {
	return g.rects
}

// Includes returns the polygons the region is intersected with.
func (g Region) Includes() []*Polygon {
	return g.include
}

// Excludes returns the polygons removed from the region.
func (g Region) Excludes() []*Polygon {
	return g.exclude
}

// Intersect returns g ∩ s.
func (g Region) Intersect(s Shape) Region {
	switch s := s.(type) {
	case Rect:
		return g.intersectRect(s)
	case *Polygon:
		if s == nil || s.IsEmpty() {
			return EmptyRegion()
		}
		if r, ok := s.AsRect(); ok {
			return g.intersectRect(r)
		}
		return g.intersectPolygon(s)
	}
	return g
}

// Exclude returns g \ s.
func (g Region) Exclude(s Shape) Region {
	switch s := s.(type) {
	case Rect:
		return g.excludeRect(s)
	case *Polygon:
		if s == nil || s.IsEmpty() {
			return g
		}
		if r, ok := s.AsRect(); ok {
			return g.excludeRect(r)
		}
		return g.excludePolygon(s)
	}
	return g
}

func (g Region) intersectRect(r Rect) Region {
	rects := g.rects.Intersect(r)
	if rects.IsEmpty() {
		return EmptyRegion()
	}
	return Region{rects: rects, include: g.include, exclude: g.exclude}.normalize()
}

func (g Region) excludeRect(r Rect) Region {
	if r.IsEmpty() {
		return g
	}
	rects := g.rects.Subtract(r)
	if rects.IsEmpty() {
		return EmptyRegion()
	}
	return Region{rects: rects, include: g.include, exclude: g.exclude}.normalize()
}

func (g Region) intersectPolygon(p *Polygon) Region {
	if g.IsEmpty() {
		return EmptyRegion()
	}
	if containsPolygon(g.include, p) {
		return g
	}
	rects := g.rects.Intersect(p.Bounds())
	if rects.IsEmpty() {
		return EmptyRegion()
	}
	include := make([]*Polygon, len(g.include), len(g.include)+1)
	copy(include, g.include)
	include = append(include, p)
	return Region{rects: rects, include: include, exclude: g.exclude}.normalize()
}

func (g Region) excludePolygon(p *Polygon) Region {
	if g.IsEmpty() {
		return EmptyRegion()
	}
	if containsPolygon(g.exclude, p) {
		return g
	}
	if !g.rects.Overlaps(p.Bounds()) {
		return g
	}
	exclude := make([]*Polygon, len(g.exclude), len(g.exclude)+1)
	copy(exclude, g.exclude)
	exclude = append(exclude, p)
	return Region{rects: g.rects, include: g.include, exclude: exclude}.normalize()
}

// normalize collapses regions that are provably empty to the canonical
// empty region.
func (g Region) normalize() Region {
	if g.rects.IsEmpty() {
		return EmptyRegion()
	}
	for _, ex := range g.exclude {
		if containsPolygon(g.include, ex) {
			return EmptyRegion()
		}
		if ex.ContainsRect(g.rects.Bounds()) {
			return EmptyRegion()
		}
	}
	if g.Bounds().IsEmpty() {
		return EmptyRegion()
	}
	return g
}

func containsPolygon(list []*Polygon, p *Polygon) bool {
	for _, q := range list {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

// Contains returns true if the point belongs to the region.
func (g Region) Contains(p Point) bool {
	if !g.rects.Contains(p) {
		return false
	}
	for _, in := range g.include {
		if !in.Contains(p) {
			return false
		}
	}
	for _, ex := range g.exclude {
		if ex.Contains(p) {
			return false
		}
	}
	return true
}

// Bounds returns a conservative bounding box of the region. It is exact
// when the region is purely rectilinear.
func (g Region) Bounds() Rect {
	b := g.rects.Bounds()
	for _, in := range g.include {
		if b.IsEmpty() {
			return Rect{}
		}
		b = in.ClippedBounds(b)
	}
	return b
}

// IsEmpty returns true if the region is known to contain no points.
// Rectilinear regions are decided exactly; regions with polygon operands
// are reported empty only when that can be proven.
func (g Region) IsEmpty() bool {
	return g.rects.IsEmpty()
}

// IsUnbounded returns true if the region extends to infinity.
func (g Region) IsUnbounded() bool {
	return g.Bounds().IsUnbounded()
}

// IsRect reports whether the region is exactly one rectangle.
func (g Region) IsRect() (Rect, bool) {
	if g.rects.Len() != 1 || len(g.include) != 0 || len(g.exclude) != 0 {
		return Rect{}, false
	}
	return g.rects.rects[0], true
}

// IsRectilinear reports whether the region has no polygon operands.
func (g Region) IsRectilinear() bool {
	return len(g.include) == 0 && len(g.exclude) == 0
}

// Equal reports whether both regions have the same normal form.
func (g Region) Equal(other Region) bool {
	if !g.rects.Equal(other.rects) ||
		len(g.include) != len(other.include) ||
		len(g.exclude) != len(other.exclude) {
		return false
	}
	for i := range g.include {
		if !g.include[i].Equal(other.include[i]) {
			return false
		}
	}
	for i := range g.exclude {
		if !g.exclude[i].Equal(other.exclude[i]) {
			return false
		}
	}
	return true
}
