package gclip

import (
	"math"

	"github.com/gogpu/gclip/internal/clip"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new sub-contour.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo adds a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo adds a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo adds a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current sub-contour.
type Close struct{}

func (Close) isPathElement() {}

// FillRule decides which points a path encloses.
type FillRule uint8

const (
	// NonZero fills points with a non-zero winding number.
	NonZero FillRule = FillRule(clip.NonZero)
	// EvenOdd fills points with an odd winding number.
	EvenOdd FillRule = FillRule(clip.EvenOdd)
)

// String returns the rule name.
func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Direction is the vertex order of a closed contour, in screen coordinates
// (y grows downward).
type Direction uint8

const (
	// CW emits contours clockwise on screen.
	CW Direction = iota
	// CCW emits contours counter-clockwise on screen.
	CCW
)

// Path is an immutable set of sub-contours with a fill rule. Every
// sub-contour is treated as closed when the path is used as a clip shape.
// Build paths with PathBuilder.
type Path struct {
	elements []PathElement
	rule     FillRule
}

// Elements returns a copy of the path elements.
func (p *Path) Elements() []PathElement {
	if p == nil {
		return nil
	}
	out := make([]PathElement, len(p.elements))
	copy(out, p.elements)
	return out
}

// FillRule returns the path's fill rule.
func (p *Path) FillRule() FillRule {
	if p == nil {
		return NonZero
	}
	return p.rule
}

// WithFillRule returns a copy of the path using rule.
func (p *Path) WithFillRule(rule FillRule) *Path {
	return &Path{elements: p.Elements(), rule: rule}
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// Transform returns a new path with every point mapped through m.
// Bezier control points transform with their curve.
func (p *Path) Transform(m Matrix) *Path {
	if p == nil {
		return &Path{}
	}
	out := &Path{elements: make([]PathElement, 0, len(p.elements)), rule: p.rule}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out.elements = append(out.elements, MoveTo{Point: m.TransformPoint(e.Point)})
		case LineTo:
			out.elements = append(out.elements, LineTo{Point: m.TransformPoint(e.Point)})
		case QuadTo:
			out.elements = append(out.elements, QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			})
		case CubicTo:
			out.elements = append(out.elements, CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			})
		case Close:
			out.elements = append(out.elements, Close{})
		}
	}
	return out
}

// Bounds returns the bounding box of all points and control points. The
// curve hull always encloses the curve, so the box is conservative.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	b := Rect{
		Left: math.Inf(1), Top: math.Inf(1),
		Right: math.Inf(-1), Bottom: math.Inf(-1),
	}
	add := func(pt Point) {
		b.Left = math.Min(b.Left, pt.X)
		b.Top = math.Min(b.Top, pt.Y)
		b.Right = math.Max(b.Right, pt.X)
		b.Bottom = math.Max(b.Bottom, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	if math.IsInf(b.Left, 1) {
		return Rect{}
	}
	return b
}

// clipElements converts the path into engine elements mapped through m.
func (p *Path) clipElements(m Matrix) []clip.PathElement {
	result := make([]clip.PathElement, 0, len(p.elements))
	pt := func(q Point) clip.Point {
		q = m.TransformPoint(q)
		return clip.Pt(q.X, q.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result = append(result, clip.MoveTo{Point: pt(e.Point)})
		case LineTo:
			result = append(result, clip.LineTo{Point: pt(e.Point)})
		case QuadTo:
			result = append(result, clip.QuadTo{Control: pt(e.Control), Point: pt(e.Point)})
		case CubicTo:
			result = append(result, clip.CubicTo{
				Control1: pt(e.Control1),
				Control2: pt(e.Control2),
				Point:    pt(e.Point),
			})
		case Close:
			result = append(result, clip.Close{})
		}
	}
	return result
}

func (*Path) isShape() {}

// reverseContour reverses a single closed contour that starts with MoveTo
// and ends with Close.
func reverseContour(elems []PathElement) []PathElement {
	if len(elems) < 2 {
		return elems
	}
	move, ok := elems[0].(MoveTo)
	if !ok {
		return elems
	}

	type segment struct {
		from Point
		elem PathElement
	}
	segs := make([]segment, 0, len(elems))
	cur := move.Point
	for _, elem := range elems[1:] {
		switch e := elem.(type) {
		case LineTo:
			segs = append(segs, segment{from: cur, elem: e})
			cur = e.Point
		case QuadTo:
			segs = append(segs, segment{from: cur, elem: e})
			cur = e.Point
		case CubicTo:
			segs = append(segs, segment{from: cur, elem: e})
			cur = e.Point
		}
	}

	out := make([]PathElement, 0, len(elems))
	out = append(out, MoveTo{Point: cur})
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		switch e := s.elem.(type) {
		case LineTo:
			out = append(out, LineTo{Point: s.from})
		case QuadTo:
			out = append(out, QuadTo{Control: e.Control, Point: s.from})
		case CubicTo:
			out = append(out, CubicTo{Control1: e.Control2, Control2: e.Control1, Point: s.from})
		}
	}
	return append(out, Close{})
}
