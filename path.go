package curvepaint

// Path accumulates polyline subpaths. The curve plotter emits one subpath
// per continuous run of valid samples; an evaluation failure or non-finite
// value ends the current subpath and the next valid sample starts a new one.
type Path struct {
	subpaths [][]Point
	open     bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{subpaths: make([][]Point, 0, 4)}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, []Point{{X: x, Y: y}})
	p.open = true
}

// LineTo extends the current subpath to the given point.
// Without a preceding MoveTo it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	n := len(p.subpaths) - 1
	p.subpaths[n] = append(p.subpaths[n], Point{X: x, Y: y})
}

// Break ends the current subpath. The next LineTo or MoveTo starts a new one.
func (p *Path) Break() {
	p.open = false
}

// Clear removes all subpaths.
func (p *Path) Clear() {
	p.subpaths = p.subpaths[:0]
	p.open = false
}

// Subpaths returns the accumulated subpaths. Each subpath is a polyline of
// at least one point; single-point subpaths are not stroked.
func (p *Path) Subpaths() [][]Point {
	return p.subpaths
}

// SubpathCount returns the number of started subpaths (MoveTo starts).
func (p *Path) SubpathCount() int {
	return len(p.subpaths)
}

// IsEmpty reports whether the path has no subpaths.
func (p *Path) IsEmpty() bool {
	return len(p.subpaths) == 0
}

// Transform returns a copy of the path with every point transformed by m.
func (p *Path) Transform(m Matrix) *Path {
	if m.IsIdentity() {
		return p
	}
	out := &Path{subpaths: make([][]Point, len(p.subpaths)), open: p.open}
	for i, sp := range p.subpaths {
		tsp := make([]Point, len(sp))
		for j, pt := range sp {
			tsp[j] = m.TransformPoint(pt)
		}
		out.subpaths[i] = tsp
	}
	return out
}
