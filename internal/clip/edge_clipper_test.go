package clip

import (
	"math"
	"testing"
)

func TestEdgeClipper_ClipLine_FullyInside(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 100, 100))

	result := ec.ClipLine(Pt(10, 10), Pt(90, 90))

	if len(result) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result))
	}
	assertPointEqual(t, result[0].P0, Pt(10, 10))
	assertPointEqual(t, result[0].P1, Pt(90, 90))
}

func TestEdgeClipper_ClipLine_FullyOutside(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 100, 100))

	tests := []struct {
		name   string
		p0, p1 Point
	}{
		{"left", Pt(-50, 50), Pt(-10, 50)},
		{"right", Pt(110, 50), Pt(150, 50)},
		{"top", Pt(50, -50), Pt(50, -10)},
		{"bottom", Pt(50, 110), Pt(50, 150)},
		{"diagonal outside", Pt(-10, -10), Pt(-5, -5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ec.ClipLine(tt.p0, tt.p1)
			if len(result) != 0 {
				t.Errorf("expected 0 segments, got %d", len(result))
			}
		})
	}
}

func TestEdgeClipper_ClipLine_CrossingFromLeft(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 100, 100))

	result := ec.ClipLine(Pt(-50, 50), Pt(50, 50))

	if len(result) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result))
	}
	assertPointNear(t, result[0].P0, Pt(0, 50))
	assertPointNear(t, result[0].P1, Pt(50, 50))
}

func TestEdgeClipper_ClipLine_CrossingFromRight(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 100, 100))

	result := ec.ClipLine(Pt(50, 50), Pt(150, 50))

	if len(result) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result))
	}
	assertPointNear(t, result[0].P0, Pt(50, 50))
	assertPointNear(t, result[0].P1, Pt(100, 50))
}

func TestEdgeClipper_ClipLine_CrossingFromTop(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 100, 100))

	result := ec.ClipLine(Pt(50, -50), Pt(50, 50))

	if len(result) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result))
	}
	assertPointNear(t, result[0].P0, Pt(50, 0))
	assertPointNear(t, result[0].P1, Pt(50, 50))
}

func TestEdgeClipper_ClipLine_CrossingFromBottom(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 100, 100))

	result := ec.ClipLine(Pt(50, 150), Pt(50, 50))

	if len(result) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result))
	}
	assertPointNear(t, result[0].P0, Pt(50, 100))
	assertPointNear(t, result[0].P1, Pt(50, 50))
}

func TestEdgeClipper_ClipLine_CrossingBothSides(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 100, 100))

	result := ec.ClipLine(Pt(-50, 50), Pt(150, 50))

	if len(result) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result))
	}
	assertPointNear(t, result[0].P0, Pt(0, 50))
	assertPointNear(t, result[0].P1, Pt(100, 50))
}

func TestEdgeClipper_ClipLine_DiagonalCrossing(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 100, 100))

	result := ec.ClipLine(Pt(-50, -50), Pt(150, 150))

	if len(result) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result))
	}
	assertPointNear(t, result[0].P0, Pt(0, 0))
	assertPointNear(t, result[0].P1, Pt(100, 100))
}

func TestEdgeClipper_ClipLine_CornerCases(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 100, 100))

	tests := []struct {
		name     string
		p0, p1   Point
		expected int
	}{
		{"on left edge", Pt(0, 20), Pt(0, 80), 1},
		{"on top edge", Pt(20, 0), Pt(80, 0), 1},
		{"corner to corner", Pt(0, 0), Pt(100, 100), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ec.ClipLine(tt.p0, tt.p1)
			if len(result) != tt.expected {
				t.Errorf("expected %d segments, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestEdgeClipper_ClipContour(t *testing.T) {
	ec := NewEdgeClipper(NewRect(0, 0, 10, 10))

	// Triangle poking out to the right of the clip rect.
	tri := []Point{Pt(5, 2), Pt(20, 5), Pt(5, 8)}

	var maxX float64
	var n int
	ec.ClipContour(tri, func(p Point) {
		n++
		maxX = math.Max(maxX, p.X)
	})

	if n == 0 {
		t.Fatal("ClipContour() reported no points")
	}
	if maxX > 10+testEpsilon {
		t.Errorf("clipped points reach x=%v, want <= 10", maxX)
	}
}

const testEpsilon = 0.001

func assertPointEqual(t *testing.T, got, want Point) {
	t.Helper()
	if got.X != want.X || got.Y != want.Y {
		t.Errorf("point mismatch: got %v, want %v", got, want)
	}
}

func assertPointNear(t *testing.T, got, want Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > testEpsilon || math.Abs(got.Y-want.Y) > testEpsilon {
		t.Errorf("point mismatch: got %v, want %v (epsilon=%v)", got, want, testEpsilon)
	}
}
