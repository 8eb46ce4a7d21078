package gclip

import "github.com/gogpu/gclip/internal/clip"

// Shape is a clip operand: a Rect or a *Path. Shapes are values in local
// coordinates; the compositor maps them through the current matrix.
type Shape interface {
	isShape()
}

// Circle returns a clockwise circular path.
func Circle(cx, cy, radius float64) *Path {
	return BuildPath().AddCircle(cx, cy, radius, CW).Build()
}

// farExtent limits, in device units, how far an unbounded rectangle reaches
// when a rotating or skewing matrix maps it to a polygon.
const farExtent = 1 << 20

// deviceShape maps s through m into an engine operand. Axis-aligned
// rectangles stay rectangles so their composition is exact; everything
// else becomes a flattened polygon.
func deviceShape(s Shape, m Matrix, tolerance float64) clip.Shape {
	switch s := s.(type) {
	case Rect:
		if s.IsEmpty() {
			return clip.Rect{}
		}
		if m.IsAxisAligned() {
			return toClipRect(m.TransformRect(s))
		}
		if s.IsUnbounded() {
			inv, ok := m.inverse()
			if ok && s == fromClipRect(clip.Unbounded()) {
				return clip.Unbounded()
			}
			s = fromClipRect(toClipRect(s).Intersect(toClipRect(localCover(inv, ok))))
			if s.IsEmpty() {
				return clip.Rect{}
			}
		}
		pts := make([]clip.Point, 0, 4)
		for _, p := range [4]Point{
			Pt(s.Left, s.Top), Pt(s.Right, s.Top),
			Pt(s.Right, s.Bottom), Pt(s.Left, s.Bottom),
		} {
			q := m.TransformPoint(p)
			pts = append(pts, clip.Pt(q.X, q.Y))
		}
		return clip.PolygonFromContours(clip.NonZero, pts)
	case *Path:
		if s.IsEmpty() {
			return clip.PolygonFromContours(clip.NonZero)
		}
		return clip.NewPolygon(s.clipElements(m), clip.FillRule(s.rule), tolerance)
	}
	return clip.Rect{}
}

// localCover returns the local rectangle whose image covers the device box
// of half-width farExtent. The cover does not depend on the region, so the
// same shape always yields the same polygon.
func localCover(inv Matrix, invertible bool) Rect {
	box := NewRect(-farExtent, -farExtent, farExtent, farExtent)
	if !invertible {
		return box
	}
	return inv.TransformRect(box)
}
