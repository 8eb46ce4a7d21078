package clip

// PathElement represents a single element in a path (copy to avoid import cycle).
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

// FillRule decides which points a set of contours encloses.
type FillRule uint8

const (
	// NonZero fills points with a non-zero winding number.
	NonZero FillRule = iota
	// EvenOdd fills points with an odd winding number.
	EvenOdd
)

// DefaultTolerance is the flattening tolerance used when none is given.
const DefaultTolerance = 0.1

// maxSubdivision bounds curve recursion for degenerate or huge curves.
const maxSubdivision = 16

// Flatten converts path elements into closed polyline contours.
// Every sub-contour is implicitly closed. Contours with fewer than three
// distinct points enclose nothing and are dropped.
func Flatten(elements []PathElement, tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	tolSq := tolerance * tolerance

	var (
		contours [][]Point
		cur      []Point
		current  Point
	)
	flush := func() {
		if c := dedupe(cur); len(c) >= 3 {
			contours = append(contours, c)
		}
		cur = nil
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			cur = append(cur, e.Point)
			current = e.Point
		case LineTo:
			if cur == nil {
				cur = append(cur, current)
			}
			cur = append(cur, e.Point)
			current = e.Point
		case QuadTo:
			if cur == nil {
				cur = append(cur, current)
			}
			flattenQuad(QuadSeg{P0: current, P1: e.Control, P2: e.Point}, tolSq, 0, &cur)
			current = e.Point
		case CubicTo:
			if cur == nil {
				cur = append(cur, current)
			}
			flattenCubic(CubicSeg{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}, tolSq, 0, &cur)
			current = e.Point
		case Close:
			if len(cur) > 0 {
				current = cur[0]
			}
			flush()
		}
	}
	flush()

	return contours
}

// flattenQuad recursively subdivides the quadratic until the control point
// is within tolerance of the chord midpoint.
func flattenQuad(q QuadSeg, tolSq float64, depth int, out *[]Point) {
	mid := q.P0.Lerp(q.P2, 0.5)
	d := q.P1.Sub(mid)
	if depth >= maxSubdivision || d.X*d.X+d.Y*d.Y <= tolSq {
		*out = append(*out, q.P2)
		return
	}
	a, b := q.Subdivide()
	flattenQuad(a, tolSq, depth+1, out)
	flattenQuad(b, tolSq, depth+1, out)
}

// flattenCubic recursively subdivides the cubic using the standard
// flatness metric.
func flattenCubic(c CubicSeg, tolSq float64, depth int, out *[]Point) {
	if depth >= maxSubdivision || cubicFlatness(c) <= tolSq*16 {
		*out = append(*out, c.P3)
		return
	}
	a, b := c.Subdivide()
	flattenCubic(a, tolSq, depth+1, out)
	flattenCubic(b, tolSq, depth+1, out)
}

// cubicFlatness returns the squared distance bound from the control points
// to the chord.
func cubicFlatness(c CubicSeg) float64 {
	ux := 3.0*c.P1.X - 2.0*c.P0.X - c.P3.X
	uy := 3.0*c.P1.Y - 2.0*c.P0.Y - c.P3.Y
	vx := 3.0*c.P2.X - c.P0.X - 2.0*c.P3.X
	vy := 3.0*c.P2.Y - c.P0.Y - 2.0*c.P3.Y
	return max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// dedupe drops consecutive duplicate points and a trailing point equal to
// the first.
func dedupe(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}
