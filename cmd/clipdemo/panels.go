package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"

	"github.com/disintegration/imaging"

	"github.com/gogpu/gclip"
)

var (
	colorBackground = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	colorWhite      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorBlack      = color.NRGBA{A: 0xff}
	colorRed        = color.NRGBA{R: 0xff, A: 0xff}
	colorGreen      = color.NRGBA{G: 0xff, A: 0xff}
	colorBlue       = color.NRGBA{B: 0xff, A: 0xff}
	colorYellow     = color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
)

// sheet is the canvas all panels paint into, with the compositor that
// clips them.
type sheet struct {
	canvas *image.NRGBA
	clip   *gclip.Compositor
	layout layout
	grid   grid
	log    *slog.Logger
}

func newSheet(l layout, scale float64, log *slog.Logger) *sheet {
	g := l.grid()
	w := int(math.Ceil(g.width * scale))
	h := int(math.Ceil(g.height * scale))

	c := gclip.NewCompositor(gclip.WithBounds(gclip.NewRect(0, 0, float64(w), float64(h))))
	c.Scale(scale, scale)

	return &sheet{
		canvas: imaging.New(w, h, colorBackground),
		clip:   c,
		layout: l,
		grid:   g,
		log:    log,
	}
}

// fill paints col through the current clip.
func (s *sheet) fill(col color.Color) {
	b := s.canvas.Bounds()
	mask := s.clip.Mask(b)
	draw.DrawMask(s.canvas, b, image.NewUniform(col), image.Point{}, mask, b.Min, draw.Over)
}

// fillShape paints col through the current clip intersected with shape.
func (s *sheet) fillShape(shape gclip.Shape, col color.Color) error {
	return s.scoped(func() error {
		s.clip.Intersect(shape)
		s.fill(col)
		return nil
	})
}

// scoped runs fn between a Save and the matching restore.
func (s *sheet) scoped(fn func() error) error {
	id := s.clip.Save()
	if err := fn(); err != nil {
		return err
	}
	return s.clip.RestoreTo(id)
}

// probe logs the visibility queries a host would issue before drawing.
func (s *sheet) probe(name string, r gclip.Rect) {
	cx, cy := (r.Left+r.Right)/2, (r.Top+r.Bottom)/2
	s.log.Debug("probe",
		slog.String("panel", name),
		slog.Bool("quickReject", s.clip.QuickReject(r)),
		slog.Bool("centerVisible", s.clip.IsPointVisible(cx, cy)),
		slog.Any("deviceBounds", s.clip.DeviceClipBounds()),
	)
}

// clippedRectangle clips to the panel frame and paints its content: a
// white background, a red diagonal, a green circle and a blue bar where the
// label goes.
func (s *sheet) clippedRectangle(name string) error {
	l := s.layout
	frame := gclip.NewRect(l.ClipRectLeft, l.ClipRectTop, l.ClipRectRight, l.ClipRectBottom)
	s.clip.Intersect(frame)
	s.probe(name, frame)
	s.fill(colorWhite)

	diagonal := strokeLine(gclip.Pt(l.ClipRectLeft, l.ClipRectTop), gclip.Pt(l.ClipRectRight, l.ClipRectBottom), l.StrokeWidth)
	if err := s.fillShape(diagonal, colorRed); err != nil {
		return err
	}
	circle := gclip.Circle(l.CircleRadius, l.ClipRectBottom-l.CircleRadius, l.CircleRadius)
	if err := s.fillShape(circle, colorGreen); err != nil {
		return err
	}
	label := gclip.NewRect(l.ClipRectRight-4*l.TextSize, l.TextOffset-l.TextSize, l.ClipRectRight, l.TextOffset)
	return s.fillShape(label, colorBlue)
}

// strokeLine returns the outline of a butt-capped line of the given width.
func strokeLine(p0, p1 gclip.Point, width float64) *gclip.Path {
	d := p1.Sub(p0)
	length := math.Hypot(d.X, d.Y)
	if length == 0 || width <= 0 {
		return gclip.BuildPath().Build()
	}
	n := gclip.Pt(-d.Y/length, d.X/length).Mul(width / 2)
	a, b := p0.Add(n), p1.Add(n)
	c, e := p1.Sub(n), p0.Sub(n)
	return gclip.BuildPath().
		MoveTo(a.X, a.Y).
		LineTo(b.X, b.Y).
		LineTo(c.X, c.Y).
		LineTo(e.X, e.Y).
		Close().
		Build()
}

// panel is one cell of the sheet.
type panel struct {
	name string
	draw func(s *sheet) error
}

var panels = []panel{
	{"unclipped", func(s *sheet) error {
		s.clip.Translate(s.grid.columnOne, s.grid.rowOne)
		return s.clippedRectangle("unclipped")
	}},
	{"difference", func(s *sheet) error {
		l := s.layout
		s.clip.Translate(s.grid.columnTwo, s.grid.rowOne)
		s.clip.Intersect(gclip.NewRect(2*l.RectInset, 2*l.RectInset,
			l.ClipRectRight-2*l.RectInset, l.ClipRectBottom-2*l.RectInset))
		s.clip.Exclude(gclip.NewRect(4*l.RectInset, 4*l.RectInset,
			l.ClipRectRight-4*l.RectInset, l.ClipRectBottom-4*l.RectInset))
		return s.clippedRectangle("difference")
	}},
	{"circular", func(s *sheet) error {
		l := s.layout
		s.clip.Translate(s.grid.columnOne, s.grid.rowTwo)
		s.clip.Exclude(gclip.BuildPath().
			AddCircle(l.CircleRadius, l.ClipRectBottom-l.CircleRadius, l.CircleRadius, gclip.CCW).
			Build())
		return s.clippedRectangle("circular")
	}},
	{"intersection", func(s *sheet) error {
		l := s.layout
		s.clip.Translate(s.grid.columnTwo, s.grid.rowTwo)
		s.clip.Intersect(gclip.NewRect(l.ClipRectLeft, l.ClipRectTop,
			l.ClipRectRight-l.SmallRectOffset, l.ClipRectBottom-l.SmallRectOffset))
		s.clip.Intersect(gclip.NewRect(l.ClipRectLeft+l.SmallRectOffset, l.ClipRectTop+l.SmallRectOffset,
			l.ClipRectRight, l.ClipRectBottom))
		return s.clippedRectangle("intersection")
	}},
	{"combined", func(s *sheet) error {
		l := s.layout
		s.clip.Translate(s.grid.columnOne, s.grid.rowThree)
		r := l.CircleRadius
		s.clip.Intersect(gclip.BuildPath().
			AddCircle(l.ClipRectLeft+l.RectInset+r, l.ClipRectTop+l.RectInset+r, r, gclip.CCW).
			AddRect(gclip.NewRect(l.ClipRectRight/2-r, l.ClipRectTop+r+l.RectInset,
				l.ClipRectRight/2+r, l.ClipRectBottom-l.RectInset), gclip.CCW).
			Build())
		return s.clippedRectangle("combined")
	}},
	{"rounded", func(s *sheet) error {
		l := s.layout
		s.clip.Translate(s.grid.columnTwo, s.grid.rowThree)
		inner := gclip.NewRect(l.RectInset, l.RectInset, l.ClipRectRight-l.RectInset, l.ClipRectBottom-l.RectInset)
		s.clip.Intersect(gclip.BuildPath().
			AddRoundRect(inner, l.ClipRectRight/4, l.ClipRectRight/4, gclip.CCW).
			Build())
		return s.clippedRectangle("rounded")
	}},
	{"outside", func(s *sheet) error {
		l := s.layout
		s.clip.Translate(s.grid.columnOne, s.grid.rowFour)
		s.clip.Intersect(gclip.NewRect(2*l.RectInset, 2*l.RectInset,
			l.ClipRectRight-2*l.RectInset, l.ClipRectBottom-2*l.RectInset))
		return s.clippedRectangle("outside")
	}},
	{"skewed", func(s *sheet) error {
		l := s.layout
		s.clip.Translate(s.grid.columnTwo, s.grid.textRow)
		s.clip.Skew(0.4, 0.3)
		// Right-aligned label block ending at the anchor.
		return s.fillShape(gclip.NewRect(l.ClipRectLeft-4*l.TextSize, l.ClipRectTop-l.TextSize,
			l.ClipRectLeft, l.ClipRectTop), colorYellow)
	}},
	{"translated", func(s *sheet) error {
		l := s.layout
		s.clip.Translate(s.grid.columnTwo, s.grid.textRow)
		return s.fillShape(gclip.NewRect(l.ClipRectLeft, l.ClipRectTop-l.TextSize,
			l.ClipRectLeft+4*l.TextSize, l.ClipRectTop), colorGreen)
	}},
	{"quickReject", func(s *sheet) error {
		l := s.layout
		s.clip.Translate(s.grid.columnOne, s.grid.rejectRow)
		s.clip.Intersect(gclip.NewRect(l.ClipRectLeft, l.ClipRectTop, l.ClipRectRight, l.ClipRectBottom))
		outside := gclip.NewRect(l.ClipRectRight+1, l.ClipRectBottom+1, 2*l.ClipRectRight, 2*l.ClipRectBottom)
		rejected := s.clip.QuickRejectEdge(outside, gclip.EdgeAA)
		s.log.Info("quick reject", slog.Bool("rejected", rejected), slog.Any("rect", outside))
		if rejected {
			s.fill(colorWhite)
			return nil
		}
		s.fill(colorBlack)
		return s.fillShape(outside, colorRed)
	}},
}

// render paints every panel and returns the finished sheet.
func render(l layout, scale float64, log *slog.Logger) (*image.NRGBA, error) {
	s := newSheet(l, scale, log)
	for _, p := range panels {
		if err := s.scoped(func() error { return p.draw(s) }); err != nil {
			return nil, fmt.Errorf("panel %s: %w", p.name, err)
		}
		log.Debug("panel done", slog.String("panel", p.name), slog.Int("depth", s.clip.Depth()))
	}
	return s.canvas, nil
}
