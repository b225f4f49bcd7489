// Package flood implements the edge-aware scanline flood fill used by
// curvepaint. It operates directly on a raw RGBA byte buffer.
//
// A fill proceeds in phases over the whole buffer:
//
//  1. Barrier construction: every pixel whose Manhattan color distance from
//     the background exceeds an edge threshold is a barrier. This captures
//     stroked curve pixels as obstacles regardless of their stroke color.
//  2. Gap closing: the barrier mask is morphologically dilated (8-connected)
//     a configurable number of iterations, sealing pixel-scale breaks such
//     as anti-aliased gaps so a fill cannot leak through them.
//  3. Carve-out: pixels close to the seed color are removed from the mask
//     again, so a previously filled region whose color itself reads as
//     "barrier-like" stays fillable.
//  4. Scanline fill: an explicit stack of seeds, extending whole horizontal
//     spans per pop. Recursion is deliberately avoided; call depth would
//     scale with region size on buffers of millions of pixels.
//
// Color distance is the Manhattan distance summed over R, G, B and A.
// This is a deliberate cheap approximation; tolerance values are calibrated
// against it and must not be reinterpreted as Euclidean.
package flood

// Default thresholds. Both are empirical values carried over from the
// original tuning; they are exposed so callers can override them.
const (
	// DefaultEdgeThreshold is the minimum Manhattan distance from the
	// background color at which a pixel counts as a barrier.
	DefaultEdgeThreshold = 40

	// DefaultCarveFloor is the minimum tolerance used for the carve-out
	// phase: carve distance = max(Tolerance, DefaultCarveFloor).
	DefaultCarveFloor = 24
)

// Buffer is a raw RGBA pixel buffer, 4 bytes per pixel, row-major.
type Buffer struct {
	Pix  []uint8
	W, H int
}

// Valid reports whether the buffer length matches its dimensions.
func (b *Buffer) Valid() bool {
	return b != nil && b.W > 0 && b.H > 0 && len(b.Pix) == b.W*b.H*4
}

// Options configures a single fill operation.
type Options struct {
	SeedX, SeedY int

	// Fill is the color written into the region, always at full opacity.
	Fill [4]uint8

	// Background is the reference color for barrier detection.
	Background [4]uint8

	// Tolerance is the maximum Manhattan distance from the seed color at
	// which a pixel still belongs to the region. Values above EdgeThreshold
	// make carve-out and barrier detection overlap; the carve-out is applied
	// literally in that case, which can reopen barriers near the seed color.
	Tolerance int

	// GapCloseRadius is the number of dilation iterations applied to the
	// barrier mask. Zero performs no dilation.
	GapCloseRadius int

	// EdgeThreshold overrides DefaultEdgeThreshold when > 0.
	EdgeThreshold int

	// CarveFloor overrides DefaultCarveFloor when > 0.
	CarveFloor int
}

// Stats describes what a fill did, for diagnostics.
type Stats struct {
	BarrierPixels int // barrier pixels after dilation and carve-out
	FilledPixels  int // pixels recolored
}

// Fill flood-fills buf from the seed according to o. It returns the fill
// statistics and whether the buffer was changed. No-op conditions (seed out
// of bounds, seed already the fill color, seed on a barrier after carve-out)
// return (Stats{}, false) without touching the buffer.
//
// Fill is a complete read-modify-write: it reads the buffer state once and
// all writes are based on that state. Callers running batches must let each
// call return before starting the next.
func Fill(buf *Buffer, o Options) (Stats, bool) {
	if !buf.Valid() {
		return Stats{}, false
	}
	if o.SeedX < 0 || o.SeedX >= buf.W || o.SeedY < 0 || o.SeedY >= buf.H {
		return Stats{}, false
	}

	edgeThreshold := o.EdgeThreshold
	if edgeThreshold <= 0 {
		edgeThreshold = DefaultEdgeThreshold
	}
	carveFloor := o.CarveFloor
	if carveFloor <= 0 {
		carveFloor = DefaultCarveFloor
	}
	tolerance := o.Tolerance
	if tolerance < 0 {
		tolerance = 0
	}

	// The region is always written fully opaque, whatever alpha the caller's
	// fill color carried.
	fill := o.Fill
	fill[3] = 0xff

	seed := o.SeedY*buf.W + o.SeedX
	target := pixelAt(buf.Pix, seed)
	if target == fill {
		return Stats{}, false // already the fill color
	}

	barrier := buildBarrier(buf, o.Background, edgeThreshold)
	dilate(barrier, buf.W, buf.H, o.GapCloseRadius)

	carve := tolerance
	if carve < carveFloor {
		carve = carveFloor
	}
	carveOut(barrier, buf.Pix, target, carve)

	if barrier[seed] {
		return Stats{}, false // seed unreachable
	}

	stats := Stats{BarrierPixels: countTrue(barrier)}
	stats.FilledPixels = scanlineFill(buf, barrier, seed, target, fill, tolerance)
	return stats, stats.FilledPixels > 0
}

// scanlineFill runs the stack-based span fill and returns the number of
// recolored pixels.
func scanlineFill(buf *Buffer, barrier []bool, seed int, target, fill [4]uint8, tolerance int) int {
	w, h := buf.W, buf.H

	// filled guards against revisiting. Recolored pixels naturally stop
	// matching the target, but a fill color within tolerance of the target
	// would otherwise cycle forever.
	filled := make([]bool, w*h)

	closeEnough := func(i int) bool {
		return !barrier[i] && !filled[i] && dist(buf.Pix, i, target) <= tolerance
	}

	count := 0
	stack := make([]int, 0, 1024)
	stack = append(stack, seed)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !closeEnough(idx) {
			continue
		}

		x := idx % w
		y := idx / w

		// Extend the span left and right along the row.
		x0 := x
		for x0 > 0 && closeEnough(idx-(x-x0)-1) {
			x0--
		}
		x1 := x
		for x1 < w-1 && closeEnough(idx+(x1-x)+1) {
			x1++
		}

		// Recolor the whole span, then seed the rows above and below.
		rowStart := y * w
		for xi := x0; xi <= x1; xi++ {
			i := rowStart + xi
			setPixel(buf.Pix, i, fill)
			filled[i] = true
			count++

			if y > 0 && closeEnough(i-w) {
				stack = append(stack, i-w)
			}
			if y < h-1 && closeEnough(i+w) {
				stack = append(stack, i+w)
			}
		}
	}

	return count
}

// dist returns the Manhattan distance between the pixel at index i and c,
// summed over all four channels.
func dist(pix []uint8, i int, c [4]uint8) int {
	o := i * 4
	return absDiff(pix[o], c[0]) +
		absDiff(pix[o+1], c[1]) +
		absDiff(pix[o+2], c[2]) +
		absDiff(pix[o+3], c[3])
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func pixelAt(pix []uint8, i int) [4]uint8 {
	o := i * 4
	return [4]uint8{pix[o], pix[o+1], pix[o+2], pix[o+3]}
}

func setPixel(pix []uint8, i int, c [4]uint8) {
	o := i * 4
	pix[o] = c[0]
	pix[o+1] = c[1]
	pix[o+2] = c[2]
	pix[o+3] = c[3]
}

func countTrue(mask []bool) int {
	n := 0
	for _, v := range mask {
		if v {
			n++
		}
	}
	return n
}
