package curvepaint

import (
	"math"
	"sort"
)

// Surface owns the pixel buffer a plot is rendered into. It maintains the
// mapping between logical (CSS-like) size and the physical device-pixel
// buffer via the device pixel ratio, plus the optional frozen snapshot that
// later renders composite beneath new strokes.
//
// The buffer is always ceil(logicalWidth*dpr) x ceil(logicalHeight*dpr)
// device pixels. Resize replaces the pixmap, never mutates it in place, so
// a caller holding the old pixmap sees a consistent (stale) buffer rather
// than a torn one.
type Surface struct {
	logicalW float64
	logicalH float64
	dpr      float64

	pixmap     *Pixmap
	frozen     *Pixmap
	background RGBA

	// activeExpr is the text of the last rendered expression; Freeze stamps
	// it into usedExprs for export audit.
	activeExpr string
	usedExprs  map[string]struct{}
}

// NewSurface creates a surface of the given logical size and device pixel
// ratio. A dpr <= 0 is treated as 1.
func NewSurface(logicalWidth, logicalHeight, dpr float64, opts ...SurfaceOption) *Surface {
	options := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&options)
	}

	s := &Surface{
		background: options.background,
		usedExprs:  make(map[string]struct{}),
	}
	s.allocate(logicalWidth, logicalHeight, dpr, options.pixmap)
	s.pixmap.Clear(s.background)
	return s
}

// allocate sets the logical geometry and installs a pixel buffer of the
// matching device size.
func (s *Surface) allocate(logicalWidth, logicalHeight, dpr float64, pm *Pixmap) {
	if dpr <= 0 {
		dpr = 1
	}
	if logicalWidth < 1 {
		logicalWidth = 1
	}
	if logicalHeight < 1 {
		logicalHeight = 1
	}

	s.logicalW = logicalWidth
	s.logicalH = logicalHeight
	s.dpr = dpr

	pw := int(math.Ceil(logicalWidth * dpr))
	ph := int(math.Ceil(logicalHeight * dpr))
	if pm != nil && pm.Width() == pw && pm.Height() == ph {
		s.pixmap = pm
		return
	}
	s.pixmap = NewPixmap(pw, ph)
}

// Resize reallocates the pixel buffer for a new logical size and device
// pixel ratio. The previous contents and the frozen snapshot are discarded;
// the used-expression history is kept.
//
// Callers must serialize Resize against Render and Fill: those operations
// write into the buffer that existed when they started.
func (s *Surface) Resize(logicalWidth, logicalHeight, dpr float64) {
	s.allocate(logicalWidth, logicalHeight, dpr, nil)
	s.frozen = nil
	s.pixmap.Clear(s.background)

	Logger().Debug("surface resized",
		"logicalW", logicalWidth, "logicalH", logicalHeight, "dpr", dpr,
		"pixelW", s.pixmap.Width(), "pixelH", s.pixmap.Height())
}

// Pixmap returns the current pixel buffer.
func (s *Surface) Pixmap() *Pixmap {
	return s.pixmap
}

// Frozen returns the frozen snapshot, or nil if none is set.
func (s *Surface) Frozen() *Pixmap {
	return s.frozen
}

// LogicalWidth returns the logical width in device-independent units.
func (s *Surface) LogicalWidth() float64 {
	return s.logicalW
}

// LogicalHeight returns the logical height in device-independent units.
func (s *Surface) LogicalHeight() float64 {
	return s.logicalH
}

// DPR returns the device pixel ratio.
func (s *Surface) DPR() float64 {
	return s.dpr
}

// Background returns the surface background color.
func (s *Surface) Background() RGBA {
	return s.background
}

// SetBackground changes the background color used for clears and resets.
// It does not repaint existing content.
func (s *Surface) SetBackground(c RGBA) {
	s.background = c
}

// Freeze snapshots the current buffer contents into an immutable background
// image. Subsequent renders composite over the snapshot instead of clearing,
// so strokes stack. Freezing also records the most recently rendered
// expression in the used-expression set (deduplicated, order-insensitive)
// for export audit.
func (s *Surface) Freeze() {
	s.frozen = s.pixmap.Clone()
	if s.activeExpr != "" {
		s.usedExprs[s.activeExpr] = struct{}{}
	}
}

// Reset clears the buffer to the background color and discards the frozen
// snapshot. The used-expression history is caller-visible audit state and
// survives Reset; use ClearHistory to drop it.
func (s *Surface) Reset() {
	s.frozen = nil
	s.pixmap.Clear(s.background)
}

// UsedExpressions returns the distinct expression texts frozen into this
// surface, sorted for stable output.
func (s *Surface) UsedExpressions() []string {
	out := make([]string, 0, len(s.usedExprs))
	for e := range s.usedExprs {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// ClearHistory empties the used-expression set.
func (s *Surface) ClearHistory() {
	s.usedExprs = make(map[string]struct{})
}

// beginFrame prepares the buffer for a render: composite the frozen
// snapshot when one exists, otherwise clear to the given background.
func (s *Surface) beginFrame(background RGBA) {
	if s.frozen != nil {
		s.pixmap.CopyFrom(s.frozen)
		return
	}
	s.pixmap.Clear(background)
}
