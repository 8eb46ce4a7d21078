package clip

import (
	"errors"
	"fmt"
)

var (
	// ErrStackUnderflow is returned when popping the root frame.
	ErrStackUnderflow = errors.New("gclip: restore without matching save")

	// ErrInvalidDepth is returned by PopTo for a depth outside the live stack.
	ErrInvalidDepth = errors.New("gclip: invalid frame")
)

// Frame is one saved clip state: a region plus a caller-owned transform.
type Frame[T any] struct {
	Region    Region
	Transform T
}

// Stack manages hierarchical clip frames with push/pop operations.
// It always holds at least the root frame. Frames are values, so a popped
// frame never aliases the one beneath it.
type Stack[T any] struct {
	frames []Frame[T]
}

// NewStack creates a stack seeded with a single root frame.
func NewStack[T any](root Frame[T]) *Stack[T] {
	frames := make([]Frame[T], 1, 8) // Pre-allocate for common nesting
	frames[0] = root
	return &Stack[T]{frames: frames}
}

// Push duplicates the top frame and returns the depth before the push.
func (s *Stack[T]) Push() int {
	depth := len(s.frames)
	s.frames = append(s.frames, s.frames[depth-1])
	return depth
}

// Pop discards the top frame. The root frame cannot be popped.
func (s *Stack[T]) Pop() error {
	if len(s.frames) <= 1 {
		return ErrStackUnderflow
	}
	s.frames[len(s.frames)-1] = Frame[T]{}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

// PopTo discards frames until the stack holds depth frames.
func (s *Stack[T]) PopTo(depth int) error {
	if depth < 1 || depth > len(s.frames) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidDepth, depth, len(s.frames))
	}
	for len(s.frames) > depth {
		if err := s.Pop(); err != nil {
			return err
		}
	}
	return nil
}

// Top returns the current frame.
func (s *Stack[T]) Top() Frame[T] {
	return s.frames[len(s.frames)-1]
}

// SetRegion replaces the region of the current frame.
func (s *Stack[T]) SetRegion(r Region) {
	s.frames[len(s.frames)-1].Region = r
}

// SetTransform replaces the transform of the current frame.
func (s *Stack[T]) SetTransform(t T) {
	s.frames[len(s.frames)-1].Transform = t
}

// Depth returns the number of frames, root included.
func (s *Stack[T]) Depth() int {
	return len(s.frames)
}

// Reset drops every frame and installs a new root.
func (s *Stack[T]) Reset(root Frame[T]) {
	clear(s.frames)
	s.frames = s.frames[:1]
	s.frames[0] = root
}
