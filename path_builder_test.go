package gclip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// signedArea is the shoelace sum over on-curve points. It is positive for
// contours that run clockwise on screen.
func signedArea(elems []PathElement) float64 {
	var pts []Point
	for _, elem := range elems {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Point)
		}
	}
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func TestPathBuilder_Basic(t *testing.T) {
	path := BuildPath().
		MoveTo(0, 0).
		LineTo(100, 0).
		LineTo(100, 100).
		Close().
		Build()

	want := []PathElement{
		MoveTo{Point: Pt(0, 0)},
		LineTo{Point: Pt(100, 0)},
		LineTo{Point: Pt(100, 100)},
		Close{},
	}
	if diff := cmp.Diff(want, path.Elements()); diff != "" {
		t.Errorf("Elements() mismatch (-want +got):\n%s", diff)
	}
}

func TestPathBuilder_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		build func(Direction) *PathBuilder
		elems int
	}{
		{"Rect", func(d Direction) *PathBuilder { return BuildPath().AddRect(NewRect(0, 0, 100, 50), d) }, 5},
		{"Circle", func(d Direction) *PathBuilder { return BuildPath().AddCircle(50, 50, 25, d) }, 6},
		{"Oval", func(d Direction) *PathBuilder { return BuildPath().AddOval(NewRect(0, 0, 60, 20), d) }, 6},
		{"RoundRect", func(d Direction) *PathBuilder {
			return BuildPath().AddRoundRect(NewRect(0, 0, 100, 100), 10, 10, d)
		}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cw := tt.build(CW).Build()
			ccw := tt.build(CCW).Build()
			if n := len(cw.Elements()); n != tt.elems {
				t.Errorf("CW elements = %d, want %d", n, tt.elems)
			}
			if n := len(ccw.Elements()); n != tt.elems {
				t.Errorf("CCW elements = %d, want %d", n, tt.elems)
			}
			if a := signedArea(cw.Elements()); a <= 0 {
				t.Errorf("CW signed area = %v, want > 0", a)
			}
			if a := signedArea(ccw.Elements()); a >= 0 {
				t.Errorf("CCW signed area = %v, want < 0", a)
			}
			if diff := cmp.Diff(cw.Bounds(), ccw.Bounds()); diff != "" {
				t.Errorf("direction changed bounds (-cw +ccw):\n%s", diff)
			}
		})
	}
}

func TestPathBuilder_DegenerateShapes(t *testing.T) {
	tests := []struct {
		name string
		path *Path
	}{
		{"empty rect", BuildPath().AddRect(NewRect(10, 10, 10, 20), CW).Build()},
		{"zero radius circle", BuildPath().AddCircle(5, 5, 0, CW).Build()},
		{"negative radius circle", BuildPath().AddCircle(5, 5, -1, CCW).Build()},
		{"inverted oval", BuildPath().AddOval(NewRect(10, 10, 0, 0), CW).Build()},
		{"empty builder", BuildPath().Build()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.path.IsEmpty() {
				t.Errorf("expected empty path, got %d elements", len(tt.path.Elements()))
			}
		})
	}
}

func TestPathBuilder_RoundRectRadiusClamping(t *testing.T) {
	path := BuildPath().AddRoundRect(NewRect(0, 0, 100, 50), 100, 100, CW).Build()

	if got, want := path.Bounds(), NewRect(0, 0, 100, 50); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if n := len(path.Elements()); n != 10 {
		t.Errorf("expected 10 elements for clamped round rect, got %d", n)
	}
}

func TestPathBuilder_RoundRectZeroRadius(t *testing.T) {
	got := BuildPath().AddRoundRect(NewRect(0, 0, 10, 10), 0, 5, CW).Build()
	want := BuildPath().AddRect(NewRect(0, 0, 10, 10), CW).Build()
	if diff := cmp.Diff(want.Elements(), got.Elements()); diff != "" {
		t.Errorf("zero-radius round rect mismatch (-want +got):\n%s", diff)
	}
}

func TestPathBuilder_BuildSnapshot(t *testing.T) {
	b := BuildPath().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10)
	first := b.Build()
	b.Close()
	second := b.Build()

	if len(first.Elements()) != 3 {
		t.Errorf("first snapshot changed after builder use: %d elements", len(first.Elements()))
	}
	if len(second.Elements()) != 4 {
		t.Errorf("second snapshot has %d elements, want 4", len(second.Elements()))
	}
}

func TestPathBuilder_FillRule(t *testing.T) {
	p := BuildPath().FillRule(EvenOdd).AddCircle(0, 0, 5, CW).Build()
	if p.FillRule() != EvenOdd {
		t.Errorf("FillRule() = %v, want %v", p.FillRule(), EvenOdd)
	}
	if q := p.WithFillRule(NonZero); q.FillRule() != NonZero || p.FillRule() != EvenOdd {
		t.Error("WithFillRule should return a copy with the new rule")
	}
}

func TestPathTransform(t *testing.T) {
	p := BuildPath().AddRect(NewRect(0, 0, 10, 10), CW).Build()
	got := p.Transform(Translate(5, -5)).Bounds()
	if want := NewRect(5, -5, 15, 5); got != want {
		t.Errorf("transformed Bounds() = %v, want %v", got, want)
	}
	if p.Bounds() != NewRect(0, 0, 10, 10) {
		t.Error("Transform modified the source path")
	}
}
