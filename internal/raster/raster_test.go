package raster

import (
	"math"
	"testing"
)

// testPixmap is a minimal blending target backed by float channels.
type testPixmap struct {
	w, h int
	pix  []RGBA
}

func newTestPixmap(w, h int, c RGBA) *testPixmap {
	p := &testPixmap{w: w, h: h, pix: make([]RGBA, w*h)}
	for i := range p.pix {
		p.pix[i] = c
	}
	return p
}

func (p *testPixmap) Width() int  { return p.w }
func (p *testPixmap) Height() int { return p.h }

func (p *testPixmap) BlendPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return
	}
	i := y*p.w + x
	existing := p.pix[i]
	inv := 1 - c.A
	outA := c.A + existing.A*inv
	if outA <= 0 {
		p.pix[i] = RGBA{}
		return
	}
	p.pix[i] = RGBA{
		R: (c.R*c.A + existing.R*existing.A*inv) / outA,
		G: (c.G*c.A + existing.G*existing.A*inv) / outA,
		B: (c.B*c.A + existing.B*existing.A*inv) / outA,
		A: outA,
	}
}

func (p *testPixmap) at(x, y int) RGBA { return p.pix[y*p.w+x] }

var (
	testWhite = RGBA{R: 1, G: 1, B: 1, A: 1}
	testBlack = RGBA{A: 1}
)

func TestStrokeHorizontalLine(t *testing.T) {
	pm := newTestPixmap(40, 20, testWhite)
	s := NewStroker()

	s.StrokePolylines(pm, [][]Point{
		{{X: 5, Y: 10}, {X: 35, Y: 10}},
	}, 4, testBlack)

	// Pixels along the centerline must be black.
	for x := 10; x < 30; x++ {
		if got := pm.at(x, 10); got.R > 0.01 {
			t.Fatalf("centerline pixel (%d,10) = %+v, want black", x, got)
		}
	}
	// Pixels well above and below the stroke band must stay white.
	for x := 10; x < 30; x++ {
		if got := pm.at(x, 3); got.R < 0.99 {
			t.Fatalf("pixel (%d,3) = %+v, want white", x, got)
		}
		if got := pm.at(x, 17); got.R < 0.99 {
			t.Fatalf("pixel (%d,17) = %+v, want white", x, got)
		}
	}
}

func TestStrokeWidthClampedToMinimum(t *testing.T) {
	pm := newTestPixmap(20, 20, testWhite)
	s := NewStroker()

	// Zero width is clamped to 0.5; the stroke must still produce pixels.
	s.StrokePolylines(pm, [][]Point{
		{{X: 2, Y: 10.5}, {X: 18, Y: 10.5}},
	}, 0, testBlack)

	marked := 0
	for x := 0; x < 20; x++ {
		if pm.at(x, 10).R < 0.5 {
			marked++
		}
	}
	if marked == 0 {
		t.Error("clamped hairline stroke produced no pixels")
	}
}

func TestStrokeOpacityBlendsOncePerPixel(t *testing.T) {
	pm := newTestPixmap(40, 40, testWhite)
	s := NewStroker()

	// Two segments meeting at a joint, stroked with 50% opacity. The union
	// fill must blend each covered pixel exactly once, so the joint pixel
	// reads as a single 50% composite, not a double one.
	half := RGBA{A: 0.5}
	s.StrokePolylines(pm, [][]Point{
		{{X: 5, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 5}},
	}, 6, half)

	got := pm.at(20, 20)
	if math.Abs(got.R-0.5) > 0.01 {
		t.Errorf("joint pixel R = %g, want 0.5 (single blend)", got.R)
	}
	mid := pm.at(10, 20)
	if math.Abs(mid.R-0.5) > 0.01 {
		t.Errorf("segment pixel R = %g, want 0.5", mid.R)
	}
}

func TestStrokeSkipsDegeneratePolylines(t *testing.T) {
	pm := newTestPixmap(10, 10, testWhite)
	s := NewStroker()

	s.StrokePolylines(pm, [][]Point{
		{},                 // empty
		{{X: 5, Y: 5}},     // single point
		{{X: 3, Y: 3}, {X: 3, Y: 3}}, // zero-length segment
	}, 2, testBlack)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := pm.at(x, y); got.R < 0.99 {
				t.Fatalf("pixel (%d,%d) = %+v, want untouched white", x, y, got)
			}
		}
	}
}

func TestEdgeXAtY(t *testing.T) {
	tests := []struct {
		name string
		p0   Point
		p1   Point
		y    float64
		want float64
	}{
		{"vertical", Point{X: 3, Y: 0}, Point{X: 3, Y: 10}, 5, 3},
		{"diagonal", Point{X: 0, Y: 0}, Point{X: 10, Y: 10}, 5, 5},
		{"reversed diagonal", Point{X: 10, Y: 10}, Point{X: 0, Y: 0}, 2.5, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEdge(tt.p0, tt.p1)
			if got := e.XAtY(tt.y); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("XAtY(%g) = %g, want %g", tt.y, got, tt.want)
			}
		})
	}
}

func TestEdgeWindingDirection(t *testing.T) {
	down := NewEdge(Point{X: 0, Y: 0}, Point{X: 0, Y: 5})
	up := NewEdge(Point{X: 0, Y: 5}, Point{X: 0, Y: 0})

	if down.Dir != 1 {
		t.Errorf("downward edge Dir = %d, want 1", down.Dir)
	}
	if up.Dir != -1 {
		t.Errorf("upward edge Dir = %d, want -1", up.Dir)
	}
	if down.Y0 >= down.Y1 || up.Y0 >= up.Y1 {
		t.Error("edges not normalized to Y0 < Y1")
	}
}
