package clip

import "testing"

func TestRegion_FullAndEmpty(t *testing.T) {
	full := FullRegion()
	empty := EmptyRegion()

	if full.IsEmpty() {
		t.Error("FullRegion().IsEmpty() = true")
	}
	if !full.IsUnbounded() {
		t.Error("FullRegion().IsUnbounded() = false")
	}
	if !empty.IsEmpty() {
		t.Error("EmptyRegion().IsEmpty() = false")
	}
	if empty.IsUnbounded() {
		t.Error("EmptyRegion().IsUnbounded() = true, empty and unbounded must differ")
	}
	if !full.Contains(Pt(-1e300, 1e300)) {
		t.Error("FullRegion() should contain far points")
	}
}

func TestRegion_IntersectThenExcludeRect(t *testing.T) {
	rects := []Rect{
		NewRect(0, 0, 100, 100),
		NewRect(-5.5, 3.25, 7, 9),
		NewRect(1e6, 1e6, 1e6+1, 1e6+1),
	}
	for _, r := range rects {
		g := FullRegion().Intersect(r).Exclude(r)
		if !g.IsEmpty() {
			t.Errorf("Intersect(%v).Exclude(%v) is not empty: %v", r, r, g.Bounds())
		}
	}
}

func TestRegion_IntersectThenExcludePolygon(t *testing.T) {
	circle := NewPolygon(circleElements(50, 50, 30), NonZero, DefaultTolerance)

	g := FullRegion().Intersect(circle).Exclude(circle)
	if !g.IsEmpty() {
		t.Error("intersecting and excluding the same polygon should be empty")
	}
}

func TestRegion_IntersectIdempotent(t *testing.T) {
	circle := NewPolygon(circleElements(50, 50, 30), NonZero, DefaultTolerance)
	shapes := []Shape{
		NewRect(10, 10, 60, 60),
		circle,
	}

	base := FullRegion().Exclude(NewRect(0, 0, 20, 20))
	for _, s := range shapes {
		once := base.Intersect(s)
		twice := once.Intersect(s)
		if !once.Equal(twice) {
			t.Errorf("Intersect(%T) twice differs from once", s)
		}
	}
}

func TestRegion_DifferenceKeepsPieces(t *testing.T) {
	g := RectRegion(NewRect(0, 0, 10, 10)).Exclude(NewRect(3, 3, 7, 7))

	if _, ok := g.IsRect(); ok {
		t.Fatal("difference with a hole must not collapse to one rectangle")
	}
	if !g.IsRectilinear() {
		t.Error("IsRectilinear() = false for a rect-only region")
	}
	if g.Contains(Pt(5, 5)) {
		t.Error("hole should not be visible")
	}
	if !g.Contains(Pt(1, 5)) {
		t.Error("left band should be visible")
	}
	if got, want := g.Bounds(), NewRect(0, 0, 10, 10); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestRegion_ClipOutCircle(t *testing.T) {
	circle := NewPolygon(circleElements(20, 80, 20), NonZero, DefaultTolerance)
	g := FullRegion().Intersect(NewRect(0, 0, 100, 100)).Exclude(circle)

	if !g.Contains(Pt(50, 50)) {
		t.Error("Contains(50,50) = false, want true")
	}
	if g.Contains(Pt(20, 80)) {
		t.Error("Contains(20,80) = true, want false")
	}
	if g.Bounds().Overlaps(NewRect(101, 101, 200, 200)) {
		t.Error("bounds should not reach (101,101)")
	}
	if len(g.Excludes()) != 1 {
		t.Errorf("len(Excludes()) = %d, want 1", len(g.Excludes()))
	}
}

func TestRegion_RectPolygonCollapsesToRect(t *testing.T) {
	sq := PolygonFromContours(NonZero, square(10, 10, 20, 20))

	g := FullRegion().Intersect(sq)
	r, ok := g.IsRect()
	if !ok {
		t.Fatal("axis-aligned square polygon should produce a rect region")
	}
	if r != NewRect(10, 10, 20, 20) {
		t.Errorf("IsRect() = %v, want (10,10,20,20)", r)
	}
}

func TestRegion_ExcludeCoveringConvexPolygon(t *testing.T) {
	diamond := PolygonFromContours(NonZero, []Point{Pt(50, -100), Pt(200, 50), Pt(50, 200), Pt(-100, 50)})
	g := RectRegion(NewRect(0, 0, 100, 100)).Exclude(diamond)

	if !g.IsEmpty() {
		t.Error("excluding a convex polygon that covers the region should be empty")
	}
}

func TestRegion_ExcludeDisjointPolygonIsNoop(t *testing.T) {
	circle := NewPolygon(circleElements(500, 500, 10), NonZero, DefaultTolerance)
	base := RectRegion(NewRect(0, 0, 100, 100))

	if got := base.Exclude(circle); !got.Equal(base) {
		t.Error("excluding a far-away polygon should not change the region")
	}
}

func TestRegion_DegenerateOperands(t *testing.T) {
	base := RectRegion(NewRect(0, 0, 100, 100))
	empty := PolygonFromContours(NonZero)

	if !base.Intersect(empty).IsEmpty() {
		t.Error("intersecting with an empty polygon should be empty")
	}
	if !base.Exclude(empty).Equal(base) {
		t.Error("excluding an empty polygon should be a no-op")
	}
	if !base.Intersect(NewRect(5, 5, 1, 1)).IsEmpty() {
		t.Error("intersecting with an inverted rect should be empty")
	}
	if !base.Exclude(NewRect(5, 5, 1, 1)).Equal(base) {
		t.Error("excluding an inverted rect should be a no-op")
	}
}

func TestRegion_IntersectPolygonTightensBounds(t *testing.T) {
	tri := PolygonFromContours(NonZero, []Point{Pt(0, 0), Pt(100, 50), Pt(0, 100)})
	g := RectRegion(NewRect(0, 0, 100, 10)).Intersect(tri)

	b := g.Bounds()
	if b.Right > 20+testEpsilon {
		t.Errorf("Bounds().Right = %v, want <= 20", b.Right)
	}
	if !g.Contains(Pt(5, 5)) {
		t.Error("Contains(5,5) = false, want true")
	}
	if g.Contains(Pt(50, 5)) {
		t.Error("Contains(50,5) = true, want false")
	}
}
