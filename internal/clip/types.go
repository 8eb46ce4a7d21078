// Package clip implements the clip-region engine behind gclip: exact
// rectangle sets, flattened path polygons, the normalized region built from
// them, and the frame stack that scopes region changes.
package clip

import "math"

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp performs linear interpolation between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rect is a half-open axis-aligned rectangle [Left, Right) x [Top, Bottom).
// Edges may be infinite; a rect with all four edges infinite covers the
// whole plane.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect creates a Rect from its edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Unbounded returns the rectangle covering the whole plane.
func Unbounded() Rect {
	inf := math.Inf(1)
	return Rect{Left: -inf, Top: -inf, Right: inf, Bottom: inf}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle contains no points.
// NaN edges also count as empty.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right) || !(r.Top < r.Bottom)
}

// IsUnbounded returns true if any edge is infinite.
func (r Rect) IsUnbounded() bool {
	return math.IsInf(r.Left, 0) || math.IsInf(r.Top, 0) ||
		math.IsInf(r.Right, 0) || math.IsInf(r.Bottom, 0)
}

// Contains returns true if the point lies inside the half-open rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// ContainsRect returns true if other lies entirely inside r.
// An empty other is contained in everything.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	return other.Left >= r.Left && other.Right <= r.Right &&
		other.Top >= r.Top && other.Bottom <= r.Bottom
}

// Overlaps returns true if the two rectangles share at least one point.
func (r Rect) Overlaps(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}

// Intersect returns the intersection of two rectangles.
// Returns the zero Rect if they don't intersect.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Left:   math.Max(r.Left, other.Left),
		Top:    math.Max(r.Top, other.Top),
		Right:  math.Min(r.Right, other.Right),
		Bottom: math.Min(r.Bottom, other.Bottom),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Union returns the smallest rectangle containing both. Empty operands are
// ignored.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// RoundOut expands the rectangle to the enclosing integer grid.
func (r Rect) RoundOut() Rect {
	return Rect{
		Left:   math.Floor(r.Left),
		Top:    math.Floor(r.Top),
		Right:  math.Ceil(r.Right),
		Bottom: math.Ceil(r.Bottom),
	}
}

// Corners returns the four corners in clockwise screen order starting at
// the top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
}

// boundsOf returns the bounding box of the given points.
func boundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	b := Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		b.Left = math.Min(b.Left, p.X)
		b.Top = math.Min(b.Top, p.Y)
		b.Right = math.Max(b.Right, p.X)
		b.Bottom = math.Max(b.Bottom, p.Y)
	}
	return b
}

// LineSeg represents a line segment.
type LineSeg struct {
	P0, P1 Point
}

// QuadSeg represents a quadratic Bezier segment.
type QuadSeg struct {
	P0, P1, P2 Point
}

// CubicSeg represents a cubic Bezier segment.
type CubicSeg struct {
	P0, P1, P2, P3 Point
}

// Subdivide splits the quadratic at t=0.5.
func (q QuadSeg) Subdivide() (QuadSeg, QuadSeg) {
	p01 := q.P0.Lerp(q.P1, 0.5)
	p12 := q.P1.Lerp(q.P2, 0.5)
	mid := p01.Lerp(p12, 0.5)
	return QuadSeg{P0: q.P0, P1: p01, P2: mid}, QuadSeg{P0: mid, P1: p12, P2: q.P2}
}

// Subdivide splits the cubic at t=0.5 using de Casteljau.
func (c CubicSeg) Subdivide() (CubicSeg, CubicSeg) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	return CubicSeg{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicSeg{P0: mid, P1: p123, P2: p23, P3: c.P3}
}
