// Package curvepaint renders mathematical expressions as curves on a raster
// surface and region-fills the result with an edge-aware flood fill.
//
// # Overview
//
// curvepaint is a pure Go library with two algorithmic halves: a plotter
// that compiles an arithmetic expression over x (and free parameters a, b, c),
// samples it across a mathematical domain and strokes the resulting polyline
// into an RGBA pixel buffer; and a flood fill engine that treats rendered
// curve pixels as barriers, morphologically dilates them to seal small gaps,
// and fills connected regions under a color-distance tolerance without
// leaking across lines.
//
// # Quick Start
//
//	import "github.com/curvepaint/curvepaint"
//
//	s := curvepaint.NewSurface(400, 200, 2)
//
//	e, err := curvepaint.Compile("sin(a*x + b) * c")
//	if err != nil {
//	    // malformed expression, surface stays untouched
//	}
//
//	cfg := curvepaint.DefaultRenderConfig()
//	cfg.LineColor = curvepaint.Hex("#1E90FF")
//	curvepaint.Render(s, e, curvepaint.Params{A: 1, C: 2}, cfg)
//
//	s.Freeze() // bake the stroke so later renders composite on top
//
//	changed, err := curvepaint.Fill(s, curvepaint.FillOptions{
//	    SeedX:     40,
//	    SeedY:     90,
//	    FillColor: curvepaint.Hex("#FFD700"),
//	    Tolerance: 24,
//	})
//
// # Coordinate System
//
// The raster uses standard computer graphics coordinates (origin top-left,
// y down); the mathematical domain maps with y inverted, so positive function
// values appear above the axis. Surfaces are sized in logical units and
// backed by a device-pixel buffer scaled by the device pixel ratio.
//
// # Concurrency
//
// All operations run synchronously on the calling goroutine and complete
// before returning. The pixel buffer is never shared between concurrent
// operations; callers that interleave resizes with renders must serialize
// them. Batch fills yield to the caller periodically via a callback so a
// host UI can present intermediate states.
package curvepaint

// Version is the current version of the library.
const Version = "0.2.0"
