package clip

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// Rasterize renders the region into an 8-bit coverage mask covering bounds
// (0 = outside, 255 = fully inside). The rectilinear part and non-zero
// polygons are rasterized with anti-aliasing; even-odd polygons are sampled
// at pixel centres. Polygon masks combine multiplicatively, the way nested
// mask clips do.
func (g Region) Rasterize(bounds image.Rectangle) *image.Alpha {
	dst := image.NewAlpha(bounds)
	if g.IsEmpty() || bounds.Empty() {
		return dst
	}

	frame := Rect{
		Left:   float64(bounds.Min.X),
		Top:    float64(bounds.Min.Y),
		Right:  float64(bounds.Max.X),
		Bottom: float64(bounds.Max.Y),
	}
	origin := Pt(frame.Left, frame.Top)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Src

	for _, r := range g.rects.rects {
		c := r.Intersect(frame)
		if c.IsEmpty() {
			continue
		}
		corners := c.Corners()
		addContour(z, corners[:], origin)
	}
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	scratch := image.NewAlpha(bounds)
	for _, in := range g.include {
		rasterizePolygon(z, scratch, in, origin)
		modulate(dst, scratch, false)
	}
	for _, ex := range g.exclude {
		rasterizePolygon(z, scratch, ex, origin)
		modulate(dst, scratch, true)
	}
	return dst
}

// rasterizePolygon renders p into mask, overwriting its previous contents.
func rasterizePolygon(z *vector.Rasterizer, mask *image.Alpha, p *Polygon, origin Point) {
	clear(mask.Pix)
	b := mask.Bounds()

	if p.FillRule() == EvenOdd {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if p.Contains(Pt(float64(x)+0.5, float64(y)+0.5)) {
					mask.Pix[mask.PixOffset(x, y)] = 0xff
				}
			}
		}
		return
	}

	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Src
	for _, c := range p.Contours() {
		addContour(z, c, origin)
	}
	z.Draw(mask, b, image.Opaque, image.Point{})
}

// addContour appends a closed contour, translated so origin maps to the
// rasterizer's (0, 0).
func addContour(z *vector.Rasterizer, pts []Point, origin Point) {
	if len(pts) < 3 {
		return
	}
	p := pts[0].Sub(origin)
	z.MoveTo(float32(p.X), float32(p.Y))
	for _, q := range pts[1:] {
		q = q.Sub(origin)
		z.LineTo(float32(q.X), float32(q.Y))
	}
	z.ClosePath()
}

// modulate multiplies dst by mask (or by its complement when invert is set).
func modulate(dst, mask *image.Alpha, invert bool) {
	for i, m := range mask.Pix {
		if invert {
			m = 0xff - m
		}
		dst.Pix[i] = uint8(uint16(dst.Pix[i]) * uint16(m) / 0xff)
	}
}
