// Command curvedemo plots an expression, flood-fills regions of the result
// with a generated palette, and exports the artwork as PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"github.com/curvepaint/curvepaint"
)

func main() {
	var (
		exprText = flag.String("expr", "sin(a*x+b)*c", "expression over x with parameters a, b, c")
		a        = flag.Float64("a", 1, "parameter a")
		b        = flag.Float64("b", 0, "parameter b")
		c        = flag.Float64("c", 2, "parameter c")
		width    = flag.Float64("width", 800, "logical width")
		height   = flag.Float64("height", 400, "logical height")
		dpr      = flag.Float64("dpr", 1, "device pixel ratio")
		tilt     = flag.Float64("tilt", 0, "tilt angle in degrees")
		line     = flag.String("line", "#222222", "line color (hex)")
		bg       = flag.String("bg", "#FFFFFF", "background color (hex)")
		fills    = flag.Int("fills", 12, "number of random flood fills")
		seed     = flag.Int64("seed", 1, "random seed for fill placement")
		output   = flag.String("output", "curve.png", "output file")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		curvepaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	e, err := curvepaint.Compile(*exprText)
	if err != nil {
		log.Fatalf("Invalid expression: %v", err)
	}

	background := curvepaint.Hex(*bg)
	s := curvepaint.NewSurface(*width, *height, *dpr, curvepaint.WithBackground(background))

	cfg := curvepaint.DefaultRenderConfig()
	cfg.LineColor = curvepaint.Hex(*line)
	cfg.Background = background
	cfg.TiltDegrees = *tilt

	params := curvepaint.Params{A: *a, B: *b, C: *c}
	if err := curvepaint.Render(s, e, params, cfg); err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	s.Freeze()

	fillRandomRegions(s, *fills, *seed)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	err = curvepaint.Export(f, s, curvepaint.ExportOptions{Footer: true, Separator: "  |  "})
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	log.Printf("Artwork saved to %s (%dx%d px)\n", *output, s.Pixmap().Width(), s.Pixmap().Height())
}

// goldenAngle spaces consecutive palette hues for maximally distinct colors.
const goldenAngle = 137.508

// paletteHue returns the i-th hue of a palette starting at base.
func paletteHue(base float64, i int) float64 {
	return math.Mod(base+float64(i)*goldenAngle, 360)
}

// fillRandomRegions drops n fills at random positions, stepping the HSL
// palette hue per fill so adjacent regions get distinct colors.
func fillRandomRegions(s *curvepaint.Surface, n int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	base := rng.Float64() * 360

	changed := 0
	for i := 0; i < n; i++ {
		ok, err := curvepaint.Fill(s, curvepaint.FillOptions{
			SeedX:          rng.Intn(s.Pixmap().Width()),
			SeedY:          rng.Intn(s.Pixmap().Height()),
			FillColor:      curvepaint.HSL(paletteHue(base, i), 0.65, 0.6),
			Tolerance:      24,
			GapCloseRadius: 1,
			Refreeze:       true,
		})
		if err != nil {
			log.Fatalf("Fill failed: %v", err)
		}
		if ok {
			changed++
		}
	}
	log.Printf("%d of %d fills changed the canvas\n", changed, n)
}
