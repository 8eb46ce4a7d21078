package gclip

import "github.com/gogpu/gclip/internal/clip"

// Option configures a Compositor during creation.
// Use functional options to customize Compositor behavior.
//
// Example:
//
//	// Root frame covers the whole plane
//	c := gclip.NewCompositor()
//
//	// Root frame limited to an 800x600 device surface
//	c := gclip.NewCompositor(gclip.WithBounds(gclip.NewRect(0, 0, 800, 600)))
type Option func(*options)

// options holds optional configuration for Compositor creation.
type options struct {
	bounds    Rect
	bounded   bool
	tolerance float64
}

// defaultOptions returns the default compositor options.
func defaultOptions() options {
	return options{
		tolerance: clip.DefaultTolerance,
	}
}

// WithBounds limits the root frame to r (in device coordinates) instead of
// the whole plane. An empty r gives an empty root region.
func WithBounds(r Rect) Option {
	return func(o *options) {
		o.bounds = r
		o.bounded = true
	}
}

// WithTolerance sets the maximum distance, in device units, between a
// curve and the polyline that replaces it. Non-positive values keep the
// default of 0.1.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}
