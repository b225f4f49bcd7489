package curvepaint

import (
	"math"
	"testing"
)

func TestOverscan(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		height float64
		deg    float64
		want   float64
	}{
		{"no rotation", 200, 100, 0, 0},
		{"90 degrees", 200, 100, 90, 0}, // rotated width is the height, smaller
		{"180 degrees", 200, 100, 180, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overscan(tt.width, tt.height, tt.deg*math.Pi/180)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("overscan = %g, want %g", got, tt.want)
			}
		})
	}

	// For intermediate angles the rotated bounding width exceeds the frame
	// width and the overscan is strictly positive.
	for _, deg := range []float64{15, 30, 45, 60} {
		got := overscan(200, 100, deg*math.Pi/180)
		if got <= 0 {
			t.Errorf("overscan at %g deg = %g, want > 0", deg, got)
		}
	}
}

func TestRotatedEndpointsLeaveFrame(t *testing.T) {
	// The overscanned domain endpoints, rotated about the canvas center,
	// must land outside the visible frame for any tilt that is not a
	// multiple of 180 degrees. Endpoints sit on the horizontal centerline
	// before rotation (the worst case for horizontal escape).
	const w, h = 200.0, 100.0

	for _, deg := range []float64{10, 30, 45, 60, 90, 135, 170} {
		angle := deg * math.Pi / 180
		over := overscan(w, h, angle)
		m := RotateAbout(angle, w/2, h/2)

		for _, px := range []float64{-over, w + over} {
			p := m.TransformPoint(Pt(px, h/2))
			insideX := p.X > 0 && p.X < w
			insideY := p.Y > 0 && p.Y < h
			if insideX && insideY {
				t.Errorf("tilt %g deg: endpoint (%g, h/2) maps to (%g, %g) inside the frame",
					deg, px, p.X, p.Y)
			}
		}
	}
}

func TestBuildCurvePathSegments(t *testing.T) {
	cfg := DefaultRenderConfig()

	tests := []struct {
		name         string
		fn           sampleFunc
		wantSegments int
		wantBad      int
	}{
		{
			name:         "everywhere defined",
			fn:           func(x float64) (float64, error) { return math.Sin(x), nil },
			wantSegments: 1,
			wantBad:      0,
		},
		{
			// The 300-step sampling of [-10,10] hits x=-5 and x=0 exactly
			// (i=75 and i=150); two isolated bad samples split the curve
			// into three segments: moveTo starts = failures + 1.
			name: "two isolated failures",
			fn: func(x float64) (float64, error) {
				if x == -5 || x == 0 {
					return 0, &EvalError{X: x}
				}
				return x / 10, nil
			},
			wantSegments: 3,
			wantBad:      2,
		},
		{
			name: "non-finite breaks segment",
			fn: func(x float64) (float64, error) {
				if x == 0 {
					return math.Inf(1), nil
				}
				return 0, nil
			},
			wantSegments: 2,
			wantBad:      1,
		},
		{
			name:         "everywhere failing",
			fn:           func(x float64) (float64, error) { return 0, &EvalError{X: x} },
			wantSegments: 0,
			wantBad:      301,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, bad := buildCurvePath(tt.fn, cfg, 300, 150, 0)
			if path.SubpathCount() != tt.wantSegments {
				t.Errorf("SubpathCount = %d, want %d", path.SubpathCount(), tt.wantSegments)
			}
			if bad != tt.wantBad {
				t.Errorf("bad samples = %d, want %d", bad, tt.wantBad)
			}
		})
	}
}

func TestBuildCurvePathPixelMapping(t *testing.T) {
	cfg := DefaultRenderConfig() // [-10,10] x [-5,5]

	// Constant zero maps to mid-height; domain edges map to x=0 and x=width.
	path, bad := buildCurvePath(func(x float64) (float64, error) { return 0, nil },
		cfg, 200, 100, 0)
	if bad != 0 {
		t.Fatalf("bad samples = %d, want 0", bad)
	}
	subpaths := path.Subpaths()
	if len(subpaths) != 1 {
		t.Fatalf("SubpathCount = %d, want 1", len(subpaths))
	}

	line := subpaths[0]
	first, last := line[0], line[len(line)-1]
	if math.Abs(first.X-0) > 1e-9 || math.Abs(first.Y-50) > 1e-9 {
		t.Errorf("first sample = (%g, %g), want (0, 50)", first.X, first.Y)
	}
	if math.Abs(last.X-200) > 1e-9 || math.Abs(last.Y-50) > 1e-9 {
		t.Errorf("last sample = (%g, %g), want (200, 50)", last.X, last.Y)
	}
}

func TestBuildCurvePathStepCount(t *testing.T) {
	cfg := DefaultRenderConfig()

	// Narrow surfaces still sample at least minSamples steps.
	path, _ := buildCurvePath(func(x float64) (float64, error) { return 0, nil },
		cfg, 50, 50, 0)
	if got := len(path.Subpaths()[0]); got != minSamples+1 {
		t.Errorf("narrow surface samples = %d, want %d", got, minSamples+1)
	}

	// Wide surfaces sample one step per extended pixel.
	path, _ = buildCurvePath(func(x float64) (float64, error) { return 0, nil },
		cfg, 600, 50, 25)
	if got := len(path.Subpaths()[0]); got != 651 {
		t.Errorf("wide surface samples = %d, want 651", got)
	}
}

func TestRenderSinScenario(t *testing.T) {
	// sin(a*x+b)*c with a=1, b=0, c=1 on a 200x100 surface over
	// [-10,10]x[-5,5]: sin(0)=0 maps to pixel (100, 50); with a 2px stroke
	// the curve must darken that pixel. sin is defined everywhere, so the
	// curve has exactly one segment.
	s := NewSurface(200, 100, 1)
	e, err := Compile("sin(a*x+b)*c")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	cfg := DefaultRenderConfig()
	if err := Render(s, e, Params{A: 1, B: 0, C: 1}, cfg); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	center := s.Pixmap().GetPixel(100, 50)
	if center.R > 0.5 {
		t.Errorf("pixel (100,50) = %+v, want dark (curve passes through center)", center)
	}

	// A corner far from the curve stays background white.
	corner := s.Pixmap().GetPixel(2, 2)
	if corner.R < 0.9 || corner.G < 0.9 || corner.B < 0.9 {
		t.Errorf("pixel (2,2) = %+v, want white background", corner)
	}
}

func TestRenderNilExpressionClearsOnly(t *testing.T) {
	s := NewSurface(50, 50, 1)
	cfg := DefaultRenderConfig()
	cfg.Background = Hex("#FF0000")

	if err := Render(s, nil, Params{}, cfg); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	got := s.Pixmap().GetPixel(25, 25)
	if got.R < 0.99 || got.G > 0.01 {
		t.Errorf("pixel = %+v, want pure background red", got)
	}
}

func TestRenderDegenerateDomain(t *testing.T) {
	s := NewSurface(50, 50, 1)
	e, err := Compile("x")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	cfg := DefaultRenderConfig()
	cfg.XMin, cfg.XMax = 5, 5
	if err := Render(s, e, Params{}, cfg); err == nil {
		t.Error("Render with empty domain succeeded, want error")
	}
}

func TestRenderCompositesOverFrozenSnapshot(t *testing.T) {
	s := NewSurface(100, 50, 1)
	e, err := Compile("0.0*x - 3.0")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	cfg := DefaultRenderConfig()
	cfg.LineColor = Hex("#0000FF")
	if err := Render(s, e, Params{}, cfg); err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	s.Freeze()

	// Second render of a different curve must keep the first stroke:
	// y=-3 maps to pixel row 80% down, y=+3 to 20% down.
	e2, err := Compile("0.0*x + 3.0")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	cfg.LineColor = Hex("#FF0000")
	if err := Render(s, e2, Params{}, cfg); err != nil {
		t.Fatalf("second render failed: %v", err)
	}

	lower := s.Pixmap().GetPixel(50, 40) // y=-3 row: frozen blue stroke
	if lower.B < 0.5 || lower.R > 0.5 {
		t.Errorf("frozen stroke pixel = %+v, want blue", lower)
	}
	upper := s.Pixmap().GetPixel(50, 10) // y=+3 row: new red stroke
	if upper.R < 0.5 || upper.B > 0.5 {
		t.Errorf("new stroke pixel = %+v, want red", upper)
	}
}
