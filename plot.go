package curvepaint

import (
	"fmt"
	"math"

	"github.com/curvepaint/curvepaint/internal/raster"
)

// minSamples is the lower bound on the number of sample steps per render.
// Narrow surfaces still get a visually smooth curve.
const minSamples = 300

// RenderConfig describes one curve render. It is a plain value object: all
// state a render needs is passed in, nothing ambient.
//
// The mathematical domain XMin..XMax maps onto the full logical width and
// YMin..YMax onto the full logical height (y inverted, so YMax is the top).
type RenderConfig struct {
	XMin, XMax float64
	YMin, YMax float64

	// LineColor is the stroke color. LineOpacity in [0, 1] scales its alpha;
	// values outside the range are clamped.
	LineColor   RGBA
	LineOpacity float64

	// LineWidth is the stroke width in logical units, minimum 0.5.
	LineWidth float64

	// TiltDegrees rotates the stroke about the canvas center. The sample
	// range is overscanned so the curve's domain edges land outside the
	// visible frame instead of showing as cut stubs (see overscan).
	TiltDegrees float64

	// Background is used to clear the surface when no frozen snapshot
	// exists. With a snapshot present it is ignored and the snapshot is
	// composited instead.
	Background RGBA
}

// DefaultRenderConfig returns the standard plotting configuration:
// domain [-10, 10] x [-5, 5], a 2-unit opaque black stroke on white.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		XMin: -10, XMax: 10,
		YMin: -5, YMax: 5,
		LineColor:   Black,
		LineOpacity: 1,
		LineWidth:   2,
		Background:  White,
	}
}

// overscan returns the extra horizontal margin (in logical units) needed so
// that after rotating the stroke by angle about the canvas center, the
// domain-edge endpoints land outside the visible frame. It is half the
// excess of the rotated bounding width over the frame width.
func overscan(width, height, angleRad float64) float64 {
	if angleRad == 0 {
		return 0
	}
	rotatedW := math.Abs(width*math.Cos(angleRad)) + math.Abs(height*math.Sin(angleRad))
	return math.Max(0, (rotatedW-width)/2)
}

// sampleFunc evaluates the plotted function at x. It exists so the sampling
// loop can be exercised independently of a compiled Expression.
type sampleFunc func(x float64) (float64, error)

// buildCurvePath samples fn across the mathematical domain and accumulates
// polyline subpaths in logical pixel coordinates. A sample that fails or
// yields a non-finite value breaks the current subpath; the next valid
// sample starts a new one. Returns the path and the number of bad samples.
func buildCurvePath(fn sampleFunc, cfg RenderConfig, width, height, over float64) (*Path, int) {
	steps := int(math.Floor(width + 2*over))
	if steps < minSamples {
		steps = minSamples
	}

	// The mathematical domain is unchanged; only the pixel range extends.
	pxPerXExt := (width + 2*over) / (cfg.XMax - cfg.XMin)
	pxPerY := height / (cfg.YMax - cfg.YMin)

	path := NewPath()
	bad := 0
	for i := 0; i <= steps; i++ {
		x := cfg.XMin + float64(i)/float64(steps)*(cfg.XMax-cfg.XMin)

		y, err := fn(x)
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			bad++
			path.Break()
			continue
		}

		px := (x-cfg.XMin)*pxPerXExt - over
		py := height - (y-cfg.YMin)*pxPerY
		path.LineTo(px, py)
	}
	return path, bad
}

// Render samples the expression across the configured domain and strokes
// the resulting polyline into the surface's pixel buffer.
//
// Clearing policy: without a frozen snapshot the surface is cleared to
// cfg.Background first; with one, clearing is skipped and the stroke
// composites over the snapshot. A nil expression performs only that
// background step (the caller's fallback after a CompileError).
func Render(s *Surface, e *Expression, p Params, cfg RenderConfig) error {
	if s == nil || s.Pixmap() == nil {
		return &BufferAccessError{Reason: "render target missing"}
	}
	if cfg.XMax <= cfg.XMin || cfg.YMax <= cfg.YMin {
		return fmt.Errorf("curvepaint: degenerate domain [%g,%g]x[%g,%g]",
			cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax)
	}

	s.beginFrame(cfg.Background)
	if e == nil {
		s.activeExpr = ""
		return nil
	}

	width := s.LogicalWidth()
	height := s.LogicalHeight()
	angle := cfg.TiltDegrees * math.Pi / 180
	over := overscan(width, height, angle)

	path, bad := buildCurvePath(func(x float64) (float64, error) {
		return e.Eval(x, p)
	}, cfg, width, height, over)

	// Rotation about the canvas center happens in logical units, then the
	// device pixel ratio scales the whole stroke into buffer coordinates.
	m := Scale(s.DPR(), s.DPR())
	if angle != 0 {
		m = m.Multiply(RotateAbout(angle, width/2, height/2))
	}
	transformed := path.Transform(m)

	strokeWidth := math.Max(cfg.LineWidth, 0.5) * s.DPR()
	color := cfg.LineColor.WithAlpha(cfg.LineColor.A * clamp01(cfg.LineOpacity))
	strokePath(s.Pixmap(), transformed, strokeWidth, color)

	s.activeExpr = e.Text()

	Logger().Debug("curve rendered",
		"expr", e.Text(),
		"segments", path.SubpathCount(),
		"badSamples", bad,
		"overscan", over,
		"tiltDeg", cfg.TiltDegrees)
	return nil
}

// strokePath rasterizes the path's subpaths into the pixmap.
func strokePath(pm *Pixmap, path *Path, width float64, color RGBA) {
	subpaths := path.Subpaths()
	lines := make([][]raster.Point, 0, len(subpaths))
	for _, sp := range subpaths {
		if len(sp) < 2 {
			continue
		}
		line := make([]raster.Point, len(sp))
		for i, pt := range sp {
			line[i] = raster.Point{X: pt.X, Y: pt.Y}
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return
	}

	raster.NewStroker().StrokePolylines(strokeTarget{pm}, lines, width,
		raster.RGBA{R: color.R, G: color.G, B: color.B, A: color.A})
}

// strokeTarget adapts Pixmap to the raster.Pixmap interface.
type strokeTarget struct {
	pm *Pixmap
}

func (t strokeTarget) Width() int  { return t.pm.Width() }
func (t strokeTarget) Height() int { return t.pm.Height() }

func (t strokeTarget) BlendPixel(x, y int, c raster.RGBA) {
	t.pm.BlendPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}
