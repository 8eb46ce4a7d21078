package gclip

import (
	"math"

	"github.com/gogpu/gclip/internal/clip"
)

// Rect is an axis-aligned rectangle covering [Left, Right) x [Top, Bottom).
// A rect whose Right <= Left or Bottom <= Top is empty.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect creates a Rect from its edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectXYWH creates a Rect from its top-left corner and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// IsEmpty returns true if the rectangle contains no points.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right) || !(r.Top < r.Bottom)
}

// IsUnbounded returns true if any edge is infinite.
func (r Rect) IsUnbounded() bool {
	return math.IsInf(r.Left, 0) || math.IsInf(r.Top, 0) ||
		math.IsInf(r.Right, 0) || math.IsInf(r.Bottom, 0)
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Overlaps returns true if the two rectangles share at least one point.
func (r Rect) Overlaps(other Rect) bool {
	return toClipRect(r).Overlaps(toClipRect(other))
}

func (Rect) isShape() {}

func toClipRect(r Rect) clip.Rect {
	return clip.NewRect(r.Left, r.Top, r.Right, r.Bottom)
}

func fromClipRect(r clip.Rect) Rect {
	return Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
