package curvepaint

import (
	"github.com/curvepaint/curvepaint/internal/flood"
)

// Re-exported flood fill tuning defaults. Both are empirical values; see
// FillOptions.EdgeThreshold and FillOptions.CarveFloor to override.
const (
	DefaultEdgeThreshold = flood.DefaultEdgeThreshold
	DefaultCarveFloor    = flood.DefaultCarveFloor
)

// FillOptions configures one flood fill operation on a surface.
type FillOptions struct {
	// SeedX, SeedY is the seed pixel in device-pixel coordinates.
	SeedX, SeedY int

	// FillColor is written into the region at full opacity.
	FillColor RGBA

	// Background is the reference color for barrier detection: pixels far
	// from it (beyond the edge threshold, Manhattan distance over RGBA)
	// count as barriers. The zero value means "use the surface background",
	// so transparent black cannot be expressed here; callers filling a
	// transparent canvas should set the surface background to Transparent
	// and leave this field zero.
	Background RGBA

	// Tolerance is the maximum Manhattan RGBA distance from the seed color
	// at which a pixel still joins the region. Tolerances above the edge
	// threshold make carve-out and barrier detection overlap; the carve-out
	// is applied literally in that case, which can reopen barrier pixels
	// whose color happens to sit near the seed color.
	Tolerance int

	// GapCloseRadius is the number of 8-connected dilation passes applied
	// to the barrier mask before filling, sealing curve gaps of up to
	// roughly that many pixels. Zero performs no dilation.
	GapCloseRadius int

	// EdgeThreshold overrides DefaultEdgeThreshold when > 0.
	EdgeThreshold int

	// CarveFloor overrides DefaultCarveFloor when > 0.
	CarveFloor int

	// Refreeze snapshots the surface after a successful fill so later
	// renders composite above the filled region.
	Refreeze bool
}

// Fill flood-fills a connected region of the surface starting at the seed
// pixel. Rendered curve pixels act as barriers; the region never leaks
// through gaps smaller than GapCloseRadius.
//
// Fill returns (false, nil) without mutating anything when the operation is
// a no-op: seed out of bounds, seed already the fill color, or seed on a
// barrier pixel after carve-out. It returns a *BufferAccessError when the
// surface's pixel buffer is unusable.
//
// The call is a single synchronous read-modify-write of the whole buffer.
func Fill(s *Surface, o FillOptions) (bool, error) {
	if s == nil || s.Pixmap() == nil {
		return false, &BufferAccessError{Reason: "surface has no pixel buffer"}
	}
	pm := s.Pixmap()
	buf := &flood.Buffer{Pix: pm.Data(), W: pm.Width(), H: pm.Height()}
	if !buf.Valid() {
		return false, &BufferAccessError{Reason: "pixel buffer length does not match dimensions"}
	}

	background := o.Background
	if background == (RGBA{}) {
		background = s.Background()
	}

	stats, changed := flood.Fill(buf, flood.Options{
		SeedX:          o.SeedX,
		SeedY:          o.SeedY,
		Fill:           o.FillColor.Bytes(),
		Background:     background.Bytes(),
		Tolerance:      o.Tolerance,
		GapCloseRadius: o.GapCloseRadius,
		EdgeThreshold:  o.EdgeThreshold,
		CarveFloor:     o.CarveFloor,
	})

	Logger().Debug("flood fill",
		"seedX", o.SeedX, "seedY", o.SeedY,
		"changed", changed,
		"filled", stats.FilledPixels,
		"barrier", stats.BarrierPixels,
		"gapCloseRadius", o.GapCloseRadius)

	if changed && o.Refreeze {
		s.Freeze()
	}
	return changed, nil
}

// yieldEvery is how many batch fills run between onYield callbacks.
const yieldEvery = 8

// Seed is one batch fill seed position in device pixels.
type Seed struct {
	X, Y int
}

// FillBatch applies the same fill options at each seed in order. Fills run
// strictly sequentially: each one's read-modify-write completes before the
// next begins, so every fill observes the buffer state its predecessor left.
//
// After every 8 fills, onYield (if non-nil) is invoked so a host can present
// the surface and keep its UI responsive. This is a scheduling courtesy, not
// a correctness mechanism; no caller ever observes a partially filled state
// within a single fill.
//
// FillBatch returns the number of fills that changed the buffer and the
// first error encountered, stopping at that error.
func FillBatch(s *Surface, seeds []Seed, o FillOptions, onYield func()) (int, error) {
	changed := 0
	for i, seed := range seeds {
		so := o
		so.SeedX = seed.X
		so.SeedY = seed.Y
		ok, err := Fill(s, so)
		if err != nil {
			return changed, err
		}
		if ok {
			changed++
		}
		if onYield != nil && (i+1)%yieldEvery == 0 {
			onYield()
		}
	}
	return changed, nil
}
