package gclip

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gclip/internal/clip"
)

// FrameID identifies a saved frame. It is the stack depth before the Save
// that returned it; pass it to RestoreTo to unwind back to that point.
type FrameID int

// Compositor composes and queries a clip region under an affine transform
// stack. Each frame holds a Region and a Matrix; Save duplicates the top
// frame and Restore discards it.
//
// A Compositor is meant for a single rendering pass and is not safe for
// concurrent use. Give each concurrent pass its own instance.
type Compositor struct {
	stack *clip.Stack[Matrix]
	opts  options
}

// NewCompositor creates a compositor whose root frame covers the whole
// plane (or the WithBounds rectangle) under the identity matrix.
func NewCompositor(opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Compositor{opts: o}
	c.stack = clip.NewStack(c.rootFrame())
	return c
}

func (c *Compositor) rootFrame() clip.Frame[Matrix] {
	region := clip.FullRegion()
	if c.opts.bounded {
		region = clip.RectRegion(toClipRect(c.opts.bounds))
	}
	return clip.Frame[Matrix]{Region: region, Transform: Identity()}
}

// Save pushes a copy of the current region and matrix.
func (c *Compositor) Save() FrameID {
	id := FrameID(c.stack.Push())
	Logger().Debug("gclip: save", slog.Int("frame", int(id)), slog.Int("depth", c.stack.Depth()))
	return id
}

// Restore pops the most recent frame, reverting the region and matrix to
// the state before the matching Save. It returns ErrStackUnderflow when
// only the root frame is left.
func (c *Compositor) Restore() error {
	if err := c.stack.Pop(); err != nil {
		Logger().Warn("gclip: unbalanced restore", slog.Int("depth", c.stack.Depth()))
		return err
	}
	Logger().Debug("gclip: restore", slog.Int("depth", c.stack.Depth()))
	return nil
}

// RestoreTo pops frames until the stack is back at the depth it had before
// the Save that returned id.
func (c *Compositor) RestoreTo(id FrameID) error {
	if err := c.stack.PopTo(int(id)); err != nil {
		Logger().Warn("gclip: invalid restore target", slog.Int("frame", int(id)), slog.Int("depth", c.stack.Depth()))
		return fmt.Errorf("restore to frame %d: %w", id, err)
	}
	Logger().Debug("gclip: restore", slog.Int("depth", c.stack.Depth()))
	return nil
}

// Depth returns the number of frames on the stack, root included.
func (c *Compositor) Depth() int {
	return c.stack.Depth()
}

// Reset drops every saved frame and restores the root region and the
// identity matrix.
func (c *Compositor) Reset() {
	c.stack.Reset(c.rootFrame())
}

// Matrix returns the current transformation matrix.
func (c *Compositor) Matrix() Matrix {
	return c.stack.Top().Transform
}

// SetMatrix replaces the current frame's matrix.
func (c *Compositor) SetMatrix(m Matrix) {
	c.stack.SetTransform(m)
}

// Concat multiplies the current matrix by m. Shapes are mapped through m
// first, then through the previous matrix.
func (c *Compositor) Concat(m Matrix) {
	c.stack.SetTransform(c.Matrix().Multiply(m))
}

// Translate applies a translation to subsequent shapes.
func (c *Compositor) Translate(dx, dy float64) {
	c.Concat(Translate(dx, dy))
}

// Skew applies a skew to subsequent shapes.
func (c *Compositor) Skew(sx, sy float64) {
	c.Concat(Skew(sx, sy))
}

// Scale applies a scaling transformation.
func (c *Compositor) Scale(sx, sy float64) {
	c.Concat(Scale(sx, sy))
}

// Rotate applies a rotation (angle in radians).
func (c *Compositor) Rotate(angle float64) {
	c.Concat(Rotate(angle))
}

// Intersect replaces the current region with its intersection with s.
func (c *Compositor) Intersect(s Shape) {
	top := c.stack.Top()
	c.stack.SetRegion(top.Region.Intersect(deviceShape(s, top.Transform, c.opts.tolerance)))
}

// Exclude removes s from the current region.
func (c *Compositor) Exclude(s Shape) {
	top := c.stack.Top()
	c.stack.SetRegion(top.Region.Exclude(deviceShape(s, top.Transform, c.opts.tolerance)))
}

// QuickReject reports whether r, mapped through the current matrix, is
// certainly outside the current region. It compares bounding boxes: a true
// result guarantees that no point of r is visible. Empty rects are always
// rejected.
func (c *Compositor) QuickReject(r Rect) bool {
	return c.QuickRejectEdge(r, EdgeExact)
}

// QuickRejectEdge is QuickReject with an explicit edge treatment.
func (c *Compositor) QuickRejectEdge(r Rect, edge EdgeType) bool {
	if r.IsEmpty() {
		return true
	}
	top := c.stack.Top()
	return rejectBox(top.Region, top.Transform.TransformRect(r), top.Transform.preservesOrder(), edge)
}

// QuickRejectPath reports whether the path, mapped through the current
// matrix, is certainly outside the current region.
func (c *Compositor) QuickRejectPath(p *Path) bool {
	if p.IsEmpty() {
		return true
	}
	top := c.stack.Top()
	return rejectBox(top.Region, p.Transform(top.Transform).Bounds(), false, EdgeExact)
}

// rejectBox tests a device-space box against the region bounds. When the
// box came from a matrix that flips or skews, its right and bottom edges
// may hold real points, so they are compared inclusively.
func rejectBox(region clip.Region, box Rect, halfOpen bool, edge EdgeType) bool {
	if region.IsEmpty() {
		return true
	}
	b := toClipRect(box)
	bounds := region.Bounds()
	if edge == EdgeAA {
		b = b.RoundOut()
		bounds = bounds.RoundOut()
	}
	if bounds.IsEmpty() {
		return true
	}
	if halfOpen {
		return !b.Overlaps(bounds)
	}
	return !(b.Left < bounds.Right && bounds.Left <= b.Right &&
		b.Top < bounds.Bottom && bounds.Top <= b.Bottom)
}

// IsPointVisible reports whether the local point (x, y), mapped through the
// current matrix, lies in the current region.
func (c *Compositor) IsPointVisible(x, y float64) bool {
	top := c.stack.Top()
	p := top.Transform.TransformPoint(Pt(x, y))
	return top.Region.Contains(clip.Pt(p.X, p.Y))
}

// IsEmpty reports whether the current region is known to be empty.
func (c *Compositor) IsEmpty() bool {
	return c.stack.Top().Region.IsEmpty()
}

// Region returns a snapshot of the current region in device coordinates.
func (c *Compositor) Region() Region {
	return Region{r: c.stack.Top().Region}
}

// DeviceClipBounds returns the bounding box of the current region in device
// coordinates.
func (c *Compositor) DeviceClipBounds() Rect {
	return fromClipRect(c.stack.Top().Region.Bounds())
}

// ClipBounds returns the bounding box of the current region in local
// coordinates, i.e. mapped back through the inverse of the current matrix.
// A singular matrix has no inverse; the result is then the whole plane.
func (c *Compositor) ClipBounds() Rect {
	top := c.stack.Top()
	b := fromClipRect(top.Region.Bounds())
	if b.IsEmpty() {
		return b
	}
	inv, ok := top.Transform.inverse()
	if !ok {
		return fromClipRect(clip.Unbounded())
	}
	return inv.TransformRect(b)
}

// Mask renders the current region into an 8-bit coverage mask over the
// device rectangle bounds.
func (c *Compositor) Mask(bounds image.Rectangle) *image.Alpha {
	return c.stack.Top().Region.Rasterize(bounds)
}
