package gclip

import (
	"image"

	"github.com/gogpu/gclip/internal/clip"
)

// Region is an immutable snapshot of a clip region in device coordinates.
// The zero value is the empty region.
type Region struct {
	r clip.Region
}

// Contains returns true if the device point (x, y) lies in the region.
func (g Region) Contains(x, y float64) bool {
	return g.r.Contains(clip.Pt(x, y))
}

// Bounds returns a conservative bounding box of the region. It is exact
// for regions built only from axis-aligned rectangles.
func (g Region) Bounds() Rect {
	return fromClipRect(g.r.Bounds())
}

// IsEmpty returns true if the region is known to contain no points.
func (g Region) IsEmpty() bool {
	return g.r.IsEmpty()
}

// IsUnbounded returns true if the region extends to infinity.
func (g Region) IsUnbounded() bool {
	return g.r.IsUnbounded()
}

// IsRect reports whether the region is exactly one rectangle.
func (g Region) IsRect() (Rect, bool) {
	r, ok := g.r.IsRect()
	return fromClipRect(r), ok
}

// Rects returns the disjoint rectangles of the region's rectilinear part.
func (g Region) Rects() []Rect {
	pieces := g.r.Rects().Rects()
	out := make([]Rect, len(pieces))
	for i, p := range pieces {
		out[i] = fromClipRect(p)
	}
	return out
}

// Equal reports whether both regions were composed to the same normal
// form. Equal regions contain the same points.
func (g Region) Equal(other Region) bool {
	return g.r.Equal(other.r)
}

// Mask renders the region into an 8-bit coverage mask over bounds.
func (g Region) Mask(bounds image.Rectangle) *image.Alpha {
	return g.r.Rasterize(bounds)
}
