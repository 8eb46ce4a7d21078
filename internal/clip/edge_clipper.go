package clip

// EdgeClipper clips polygon edges against a rectangular clip region.
// Inspired by tiny-skia edge_clipper.rs and Skia's SkEdgeClipper.
type EdgeClipper struct {
	clip Rect
}

// NewEdgeClipper creates an edge clipper for the given bounds.
// The bounds are treated as closed for clipping purposes.
func NewEdgeClipper(clip Rect) *EdgeClipper {
	return &EdgeClipper{clip: clip}
}

// Clip returns the clip rectangle.
func (ec *EdgeClipper) Clip() Rect {
	return ec.clip
}

// Outcode constants for Cohen-Sutherland algorithm.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

// outcode computes the Cohen-Sutherland outcode for a point.
func (ec *EdgeClipper) outcode(p Point) int {
	code := outcodeInside

	if p.X < ec.clip.Left {
		code |= outcodeLeft
	} else if p.X > ec.clip.Right {
		code |= outcodeRight
	}

	if p.Y < ec.clip.Top {
		code |= outcodeTop
	} else if p.Y > ec.clip.Bottom {
		code |= outcodeBottom
	}

	return code
}

// ClipLine clips a line segment to the clip rectangle using Cohen-Sutherland algorithm.
// Returns nil if the line is entirely outside, or a slice with the clipped segment.
func (ec *EdgeClipper) ClipLine(p0, p1 Point) []LineSeg {
	code0 := ec.outcode(p0)
	code1 := ec.outcode(p1)

	for {
		if (code0 | code1) == 0 {
			return []LineSeg{{P0: p0, P1: p1}}
		}
		if (code0 & code1) != 0 {
			return nil
		}

		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		var p Point
		switch {
		case (codeOut & outcodeTop) != 0:
			t := (ec.clip.Top - p0.Y) / (p1.Y - p0.Y)
			p.X = p0.X + t*(p1.X-p0.X)
			p.Y = ec.clip.Top
		case (codeOut & outcodeBottom) != 0:
			t := (ec.clip.Bottom - p0.Y) / (p1.Y - p0.Y)
			p.X = p0.X + t*(p1.X-p0.X)
			p.Y = ec.clip.Bottom
		case (codeOut & outcodeRight) != 0:
			t := (ec.clip.Right - p0.X) / (p1.X - p0.X)
			p.Y = p0.Y + t*(p1.Y-p0.Y)
			p.X = ec.clip.Right
		case (codeOut & outcodeLeft) != 0:
			t := (ec.clip.Left - p0.X) / (p1.X - p0.X)
			p.Y = p0.Y + t*(p1.Y-p0.Y)
			p.X = ec.clip.Left
		}

		if codeOut == code0 {
			p0 = p
			code0 = ec.outcode(p0)
		} else {
			p1 = p
			code1 = ec.outcode(p1)
		}
	}
}

// ClipContour clips every edge of a closed contour and reports the
// surviving segment endpoints to fn.
func (ec *EdgeClipper) ClipContour(contour []Point, fn func(p Point)) {
	n := len(contour)
	for i := 0; i < n; i++ {
		for _, seg := range ec.ClipLine(contour[i], contour[(i+1)%n]) {
			fn(seg.P0)
			fn(seg.P1)
		}
	}
}
