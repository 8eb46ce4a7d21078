// Package gclip composes and queries 2D clip regions.
//
// # Overview
//
// gclip is the clip core of a canvas-style renderer. A Compositor keeps a
// stack of frames, each holding a clip Region and an affine Matrix. Shapes
// (rectangles and paths) are mapped through the current matrix and combined
// into the region with Intersect or Exclude. The renderer then asks cheap
// questions before drawing: QuickReject to skip whole draw calls and
// IsPointVisible for hit tests.
//
// gclip does no painting. Mask renders the region into an 8-bit coverage
// image for hosts that need one.
//
// # Quick Start
//
//	import "github.com/gogpu/gclip"
//
//	c := gclip.NewCompositor(gclip.WithBounds(gclip.NewRect(0, 0, 800, 600)))
//
//	c.Intersect(gclip.NewRect(0, 0, 100, 100))
//	c.Exclude(gclip.Circle(20, 80, 20))
//
//	c.Save()
//	c.Translate(50, 0)
//	c.Intersect(gclip.NewRect(0, 0, 10, 10))
//	// ... draw
//	if err := c.Restore(); err != nil {
//	    // unbalanced Save/Restore
//	}
//
//	if c.QuickReject(gclip.NewRect(101, 101, 200, 200)) {
//	    // nothing to draw
//	}
//
// # Regions
//
// Rectangles are kept exactly as sets of disjoint half-open rectangles, so
// the difference of two rectangles stays exact even when it is not a
// rectangle. Paths are flattened to polygons and tested with their fill
// rule. Axis-aligned rectangles under a scale, translation or quarter turn
// stay rectangles; other transforms turn them into polygons.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// A rectangle covers [Left, Right) x [Top, Bottom).
//
// # Concurrency
//
// A Compositor belongs to one rendering pass and must not be shared. Region
// snapshots are immutable and safe to read from any goroutine.
package gclip

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
