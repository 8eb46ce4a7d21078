// path_builder.go

package gclip

// kappa is the cubic Bezier control point distance for circle approximation.
// Equal to 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining. Build returns an immutable
// snapshot, so one builder can produce several paths.
type PathBuilder struct {
	elements []PathElement
	rule     FillRule
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{elements: make([]PathElement, 0, 16)}
}

// MoveTo starts a new sub-contour.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.elements = append(b.elements, MoveTo{Point: Pt(x, y)})
	return b
}

// LineTo adds a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.elements = append(b.elements, LineTo{Point: Pt(x, y)})
	return b
}

// QuadTo adds a quadratic Bezier curve.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.elements = append(b.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	return b
}

// CubicTo adds a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.elements = append(b.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	return b
}

// Close closes the current sub-contour.
func (b *PathBuilder) Close() *PathBuilder {
	b.elements = append(b.elements, Close{})
	return b
}

// FillRule sets the fill rule of the built path.
func (b *PathBuilder) FillRule(rule FillRule) *PathBuilder {
	b.rule = rule
	return b
}

// AddRect adds a closed rectangular contour. Empty rects add nothing.
func (b *PathBuilder) AddRect(r Rect, dir Direction) *PathBuilder {
	if r.IsEmpty() {
		return b
	}
	start := len(b.elements)
	b.MoveTo(r.Left, r.Top).
		LineTo(r.Right, r.Top).
		LineTo(r.Right, r.Bottom).
		LineTo(r.Left, r.Bottom).
		Close()
	return b.orient(start, dir)
}

// AddCircle adds a closed circular contour. Non-positive radii add nothing.
func (b *PathBuilder) AddCircle(cx, cy, radius float64, dir Direction) *PathBuilder {
	if radius <= 0 {
		return b
	}
	return b.AddOval(NewRect(cx-radius, cy-radius, cx+radius, cy+radius), dir)
}

// AddOval adds a closed ellipse inscribed in r.
func (b *PathBuilder) AddOval(r Rect, dir Direction) *PathBuilder {
	if r.IsEmpty() {
		return b
	}
	cx, cy := (r.Left+r.Right)/2, (r.Top+r.Bottom)/2
	rx, ry := r.Width()/2, r.Height()/2
	kx, ky := kappa*rx, kappa*ry

	start := len(b.elements)
	b.MoveTo(cx+rx, cy).
		CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry).
		CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy).
		CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry).
		CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy).
		Close()
	return b.orient(start, dir)
}

// AddRoundRect adds a rounded rectangle with elliptical corners of radii
// rx, ry. Radii are clamped to half the rectangle's size; zero radii give a
// plain rectangle.
func (b *PathBuilder) AddRoundRect(r Rect, rx, ry float64, dir Direction) *PathBuilder {
	if r.IsEmpty() {
		return b
	}
	rx = min(max(rx, 0), r.Width()/2)
	ry = min(max(ry, 0), r.Height()/2)
	if rx == 0 || ry == 0 {
		return b.AddRect(r, dir)
	}
	kx, ky := kappa*rx, kappa*ry
	x0, y0, x1, y1 := r.Left, r.Top, r.Right, r.Bottom

	start := len(b.elements)
	b.MoveTo(x0+rx, y0).
		LineTo(x1-rx, y0).
		CubicTo(x1-rx+kx, y0, x1, y0+ry-ky, x1, y0+ry).
		LineTo(x1, y1-ry).
		CubicTo(x1, y1-ry+ky, x1-rx+kx, y1, x1-rx, y1).
		LineTo(x0+rx, y1).
		CubicTo(x0+rx-kx, y1, x0, y1-ry+ky, x0, y1-ry).
		LineTo(x0, y0+ry).
		CubicTo(x0, y0+ry-ky, x0+rx-kx, y0, x0+rx, y0).
		Close()
	return b.orient(start, dir)
}

// orient reverses the contour appended since start when dir is CCW. Shapes
// are always emitted clockwise first.
func (b *PathBuilder) orient(start int, dir Direction) *PathBuilder {
	if dir != CCW {
		return b
	}
	rev := reverseContour(b.elements[start:])
	b.elements = append(b.elements[:start], rev...)
	return b
}

// Build returns the path built so far.
func (b *PathBuilder) Build() *Path {
	elements := make([]PathElement, len(b.elements))
	copy(elements, b.elements)
	return &Path{elements: elements, rule: b.rule}
}
