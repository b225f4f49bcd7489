// Package raster provides scanline rasterization of stroked polylines.
package raster

import "math"

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float64
}

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Pixmap is an interface for writing pixels (avoids import cycle).
// BlendPixel composites the color over the existing pixel so strokes with
// partial opacity interact correctly with prior content.
type Pixmap interface {
	Width() int
	Height() int
	BlendPixel(x, y int, c RGBA)
}

// Stroker rasterizes stroked polylines onto a pixmap.
//
// The stroke outline is built as one polygon soup: a quad per segment plus a
// square patch per interior joint, all with consistent winding. Filling the
// whole soup with the non-zero rule in a single pass yields the union of the
// pieces, so each covered pixel is blended exactly once per scanline even
// where segments overlap. That matters for opacity below 1: per-piece
// filling would double-composite every joint.
type Stroker struct {
	edges []Edge
}

// NewStroker creates a new stroker.
func NewStroker() *Stroker {
	return &Stroker{edges: make([]Edge, 0, 256)}
}

// StrokePolylines strokes each polyline in lines with the given width and
// color. Polylines with fewer than two points are skipped. Width is clamped
// to a minimum of 0.5 pixels.
func (s *Stroker) StrokePolylines(dst Pixmap, lines [][]Point, width float64, color RGBA) {
	if width < 0.5 {
		width = 0.5
	}

	s.edges = s.edges[:0]
	for _, line := range lines {
		s.appendPolyline(line, width)
	}
	if len(s.edges) == 0 {
		return
	}

	s.fillNonZero(dst, color)
}

// appendPolyline adds the stroke outline of a single polyline to the edge
// soup: one quad per segment, one joint patch per interior vertex.
func (s *Stroker) appendPolyline(line []Point, width float64) {
	if len(line) < 2 {
		return
	}

	half := width / 2
	for i := 0; i < len(line)-1; i++ {
		s.appendSegmentQuad(line[i], line[i+1], half)
	}
	for i := 1; i < len(line)-1; i++ {
		s.appendJointPatch(line[i], half)
	}
}

// appendSegmentQuad adds the quad spanning a thick line segment.
func (s *Stroker) appendSegmentQuad(p0, p1 Point, half float64) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 1e-9 {
		return
	}

	// Perpendicular unit vector scaled to half width.
	nx := -dy / length * half
	ny := dx / length * half

	s.appendPolygon([]Point{
		{X: p0.X + nx, Y: p0.Y + ny},
		{X: p1.X + nx, Y: p1.Y + ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p0.X - nx, Y: p0.Y - ny},
	})
}

// appendJointPatch adds an axis-aligned square centered at an interior
// vertex. The square circumscribes the half-width disc, so it covers the
// wedge a round join would cover between two segment quads.
// Winding order matches appendSegmentQuad so the union fill stays solid.
func (s *Stroker) appendJointPatch(p Point, half float64) {
	s.appendPolygon([]Point{
		{X: p.X - half, Y: p.Y - half},
		{X: p.X - half, Y: p.Y + half},
		{X: p.X + half, Y: p.Y + half},
		{X: p.X + half, Y: p.Y - half},
	})
}

// appendPolygon adds the closed polygon's edges to the soup.
func (s *Stroker) appendPolygon(pts []Point) {
	for i := range pts {
		p0 := pts[i]
		p1 := pts[(i+1)%len(pts)]
		if math.Abs(p1.Y-p0.Y) < 1e-9 {
			continue // horizontal edges never cross a scanline
		}
		s.edges = append(s.edges, NewEdge(p0, p1))
	}
}

// fillNonZero scanline-fills the accumulated edge soup with the non-zero
// winding rule, blending color into dst.
func (s *Stroker) fillNonZero(dst Pixmap, color RGBA) {
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range s.edges {
		yMin = math.Min(yMin, e.Y0)
		yMax = math.Max(yMax, e.Y1)
	}

	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > dst.Height() {
		y1 = dst.Height()
	}

	crossings := make([]crossing, 0, 64)
	for y := y0; y < y1; y++ {
		scanY := float64(y) + 0.5

		crossings = crossings[:0]
		for i := range s.edges {
			e := &s.edges[i]
			if e.Y0 <= scanY && scanY < e.Y1 {
				crossings = append(crossings, crossing{x: e.XAtY(scanY), dir: e.Dir})
			}
		}
		if len(crossings) == 0 {
			continue
		}
		sortCrossings(crossings)

		winding := 0
		var spanStart float64
		for _, c := range crossings {
			if winding == 0 {
				spanStart = c.x
			}
			winding += c.dir
			if winding == 0 {
				s.blendSpan(dst, spanStart, c.x, y, color)
			}
		}
	}
}

// blendSpan blends a horizontal span [x1, x2) of pixels.
func (s *Stroker) blendSpan(dst Pixmap, x1, x2 float64, y int, color RGBA) {
	a := int(x1)
	b := int(x2)
	if a > b {
		a, b = b, a
	}
	if a < 0 {
		a = 0
	}
	if b > dst.Width() {
		b = dst.Width()
	}
	for x := a; x < b; x++ {
		dst.BlendPixel(x, y, color)
	}
}

// crossing is a scanline intersection with an edge.
type crossing struct {
	x   float64
	dir int
}

// sortCrossings sorts crossings by x (insertion sort, lists are short).
func sortCrossings(cs []crossing) {
	for i := 1; i < len(cs); i++ {
		key := cs[i]
		j := i - 1
		for j >= 0 && cs[j].x > key.x {
			cs[j+1] = cs[j]
			j--
		}
		cs[j+1] = key
	}
}
