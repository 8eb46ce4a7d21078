package gclip

import "github.com/gogpu/gclip/internal/clip"

var (
	// ErrStackUnderflow is returned by Restore when only the root frame is
	// left. It signals unbalanced Save/Restore calls in the caller.
	ErrStackUnderflow = clip.ErrStackUnderflow

	// ErrInvalidFrame is returned by RestoreTo for a FrameID that is not on
	// the live stack.
	ErrInvalidFrame = clip.ErrInvalidDepth
)
