package flood

// buildBarrier marks every pixel whose Manhattan distance from the
// background color exceeds the edge threshold. Stroke pixels register as
// barriers this way no matter what color they were drawn in.
func buildBarrier(buf *Buffer, background [4]uint8, edgeThreshold int) []bool {
	mask := make([]bool, buf.W*buf.H)
	for i := range mask {
		if dist(buf.Pix, i, background) > edgeThreshold {
			mask[i] = true
		}
	}
	return mask
}

// dilate grows the barrier mask in place by the given number of iterations.
// Each iteration marks a pixel if any of its 8 neighbors was marked in the
// previous iteration, sealing curve gaps up to roughly radius pixels wide.
// Dilation is monotone: pixels are only ever added, never removed.
func dilate(mask []bool, w, h, radius int) {
	if radius <= 0 {
		return
	}

	prev := make([]bool, len(mask))
	for iter := 0; iter < radius; iter++ {
		copy(prev, mask)
		for y := 0; y < h; y++ {
			row := y * w
			for x := 0; x < w; x++ {
				if prev[row+x] {
					continue
				}
				if anyNeighbor(prev, w, h, x, y) {
					mask[row+x] = true
				}
			}
		}
	}
}

// anyNeighbor reports whether any 8-connected neighbor of (x, y) is marked.
func anyNeighbor(mask []bool, w, h, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			if mask[ny*w+nx] {
				return true
			}
		}
	}
	return false
}

// carveOut un-marks every pixel within carve distance of the target color,
// even if barrier construction or dilation marked it. Without this, a region
// whose current color reads as "barrier-like" relative to the background
// (a previously filled area, or pixels hugging a line) could never be
// re-filled from a seed inside it.
func carveOut(mask []bool, pix []uint8, target [4]uint8, carve int) {
	for i := range mask {
		if mask[i] && dist(pix, i, target) <= carve {
			mask[i] = false
		}
	}
}
