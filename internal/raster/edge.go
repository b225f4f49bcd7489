package raster

// Edge represents a non-horizontal line segment prepared for scanline
// rasterization, stored with Y0 < Y1.
type Edge struct {
	X0, Y0 float64 // Upper point
	X1, Y1 float64 // Lower point
	Dir    int     // Winding direction before normalization: +1 or -1
}

// NewEdge creates a new edge from two points.
func NewEdge(p0, p1 Point) Edge {
	// Direction is taken BEFORE the swap (non-zero winding rule).
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	return Edge{
		X0:  p0.X,
		Y0:  p0.Y,
		X1:  p1.X,
		Y1:  p1.Y,
		Dir: dir,
	}
}

// XAtY calculates the x coordinate at the given y coordinate.
func (e *Edge) XAtY(y float64) float64 {
	if e.Y1 == e.Y0 {
		return e.X0
	}
	t := (y - e.Y0) / (e.Y1 - e.Y0)
	return e.X0 + (e.X1-e.X0)*t
}
