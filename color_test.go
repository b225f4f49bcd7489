package curvepaint

import (
	"math"
	"testing"
)

func colorNear(a, b RGBA) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.A-b.A) < eps
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"6-digit", "#FF0000", RGBA{1, 0, 0, 1}},
		{"6-digit no hash", "00FF00", RGBA{0, 1, 0, 1}},
		{"8-digit with alpha", "#0000FF80", RGBA{0, 0, 1, 128.0 / 255}},
		{"3-digit shorthand", "#F00", RGBA{1, 0, 0, 1}},
		{"4-digit shorthand", "#F008", RGBA{1, 0, 0, 136.0 / 255}},
		{"lowercase", "#ffffff", RGBA{1, 1, 1, 1}},
		{"gray", "#808080", RGBA{128.0 / 255, 128.0 / 255, 128.0 / 255, 1}},
		{"malformed length", "#12345", RGBA{0, 0, 0, 1}},
		{"empty", "", RGBA{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorNear(got, tt.want) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want [4]uint8
	}{
		{"white", White, [4]uint8{255, 255, 255, 255}},
		{"transparent", Transparent, [4]uint8{0, 0, 0, 0}},
		{"half red", RGBA{0.5, 0, 0, 1}, [4]uint8{127, 0, 0, 255}},
		{"clamps above", RGBA{2, 0, 0, 1}, [4]uint8{255, 0, 0, 255}},
		{"clamps below", RGBA{-1, 0, 0, 1}, [4]uint8{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Bytes(); got != tt.want {
				t.Errorf("Bytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.25)
	if c.R != 1 || c.A != 0.25 {
		t.Errorf("WithAlpha = %+v, want red with alpha 0.25", c)
	}
	if Red.A != 1 {
		t.Error("WithAlpha mutated the receiver")
	}
}

func TestLerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if !colorNear(mid, RGBA{0.5, 0.5, 0.5, 1}) {
		t.Errorf("Lerp midpoint = %+v, want mid-gray", mid)
	}
	if got := Black.Lerp(White, 0); !colorNear(got, Black) {
		t.Errorf("Lerp at 0 = %+v, want black", got)
	}
	if got := Black.Lerp(White, 1); !colorNear(got, White) {
		t.Errorf("Lerp at 1 = %+v, want white", got)
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGBA
	}{
		{"pure red", 0, 1, 0.5, RGBA{1, 0, 0, 1}},
		{"pure green", 120, 1, 0.5, RGBA{0, 1, 0, 1}},
		{"pure blue", 240, 1, 0.5, RGBA{0, 0, 1, 1}},
		{"white", 0, 0, 1, RGBA{1, 1, 1, 1}},
		{"black", 0, 0, 0, RGBA{0, 0, 0, 1}},
		{"wraps hue", 360, 1, 0.5, RGBA{1, 0, 0, 1}},
		{"negative hue", -120, 1, 0.5, RGBA{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l)
			if !colorNear(got, tt.want) {
				t.Errorf("HSL(%g, %g, %g) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	orig := RGBA{0.2, 0.4, 0.6, 1}
	got := FromColor(orig.Color())
	const eps = 1.0 / 255
	if math.Abs(got.R-orig.R) > eps || math.Abs(got.G-orig.G) > eps ||
		math.Abs(got.B-orig.B) > eps || math.Abs(got.A-orig.A) > eps {
		t.Errorf("round trip = %+v, want approximately %+v", got, orig)
	}
}
