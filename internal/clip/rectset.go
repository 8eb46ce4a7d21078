package clip

// RectSet is a union of pairwise-disjoint rectangles. The zero value is the
// empty set. Operations never modify the receiver; they return a new set.
type RectSet struct {
	rects []Rect
}

// NewRectSet creates a set holding a single rectangle. An empty r yields
// the empty set.
func NewRectSet(r Rect) RectSet {
	if r.IsEmpty() {
		return RectSet{}
	}
	return RectSet{rects: []Rect{r}}
}

// Rects returns a copy of the disjoint pieces.
func (s RectSet) Rects() []Rect {
	out := make([]Rect, len(s.rects))
	copy(out, s.rects)
	return out
}

// Len returns the number of disjoint pieces.
func (s RectSet) Len() int {
	return len(s.rects)
}

// IsEmpty returns true if the set contains no points.
func (s RectSet) IsEmpty() bool {
	return len(s.rects) == 0
}

// Bounds returns the bounding box of all pieces.
func (s RectSet) Bounds() Rect {
	var b Rect
	for _, r := range s.rects {
		b = b.Union(r)
	}
	return b
}

// Contains returns true if the point lies in any piece.
func (s RectSet) Contains(p Point) bool {
	for _, r := range s.rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Overlaps returns true if r shares a point with any piece.
func (s RectSet) Overlaps(r Rect) bool {
	for _, piece := range s.rects {
		if piece.Overlaps(r) {
			return true
		}
	}
	return false
}

// Intersect returns s ∩ r.
func (s RectSet) Intersect(r Rect) RectSet {
	if r.IsEmpty() || len(s.rects) == 0 {
		return RectSet{}
	}
	out := make([]Rect, 0, len(s.rects))
	for _, piece := range s.rects {
		if x := piece.Intersect(r); !x.IsEmpty() {
			out = append(out, x)
		}
	}
	if len(out) == 0 {
		return RectSet{}
	}
	return RectSet{rects: out}
}

// Subtract returns s \ r. Each piece overlapping r is split into at most
// four bands around it.
func (s RectSet) Subtract(r Rect) RectSet {
	if r.IsEmpty() || len(s.rects) == 0 {
		return s
	}
	out := make([]Rect, 0, len(s.rects)+3)
	for _, piece := range s.rects {
		out = appendDifference(out, piece, r)
	}
	if len(out) == 0 {
		return RectSet{}
	}
	return RectSet{rects: out}
}

// Equal reports whether both sets hold the same pieces in the same order.
func (s RectSet) Equal(other RectSet) bool {
	if len(s.rects) != len(other.rects) {
		return false
	}
	for i := range s.rects {
		if s.rects[i] != other.rects[i] {
			return false
		}
	}
	return true
}

// appendDifference appends the pieces of a \ b to dst.
func appendDifference(dst []Rect, a, b Rect) []Rect {
	if !a.Overlaps(b) {
		return append(dst, a)
	}

	// Top band spans the full width of a.
	if b.Top > a.Top {
		dst = append(dst, Rect{Left: a.Left, Top: a.Top, Right: a.Right, Bottom: b.Top})
	}
	// Bottom band spans the full width of a.
	if b.Bottom < a.Bottom {
		dst = append(dst, Rect{Left: a.Left, Top: b.Bottom, Right: a.Right, Bottom: a.Bottom})
	}

	top := max(a.Top, b.Top)
	bottom := min(a.Bottom, b.Bottom)
	if b.Left > a.Left {
		dst = append(dst, Rect{Left: a.Left, Top: top, Right: b.Left, Bottom: bottom})
	}
	if b.Right < a.Right {
		dst = append(dst, Rect{Left: b.Right, Top: top, Right: a.Right, Bottom: bottom})
	}
	return dst
}
