package curvepaint

// SurfaceOption configures a Surface during creation.
//
// Example:
//
//	// White-backed surface at 2x device pixel ratio
//	s := curvepaint.NewSurface(400, 200, 2, curvepaint.WithBackground(curvepaint.White))
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	background RGBA
	pixmap     *Pixmap
}

// defaultSurfaceOptions returns the default surface options.
func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		background: White,
		pixmap:     nil, // Will be created if nil
	}
}

// WithBackground sets the surface background color, used when clearing and
// as the default barrier reference for fills.
func WithBackground(c RGBA) SurfaceOption {
	return func(o *surfaceOptions) {
		o.background = c
	}
}

// WithPixmap provides an existing pixmap as the surface buffer.
// It is only used when its dimensions match the surface's device size;
// otherwise a fresh buffer is allocated.
func WithPixmap(pm *Pixmap) SurfaceOption {
	return func(o *surfaceOptions) {
		o.pixmap = pm
	}
}
